// This file is part of sicasm - https://github.com/db47h/sicasm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package asm implements a two pass assembler for SIC style assembly source.
//
// Source format:
//
// Each source line holds up to three whitespace separated fields:
//
//	label	mnemonic	operand
//
// A "-" stands for an absent field, and missing trailing fields default to
// "-". Any field beyond the third is ignored. A line with less than three
// fields whose first field is a directive or machine instruction has no
// label, so that "END FIRST" is the same as "- END FIRST". Blank lines and
// lines starting with a '.' are comments. For example:
//
//	COPY	START	1000
//	FIRST	LDA	ALPHA
//	-	STA	BETA
//	ALPHA	WORD	5
//	BETA	RESW	1
//	EOF	BYTE	C'EOF'
//	-	END	FIRST
//
// Mnemonics:
//
// The following directives are built-in. They take precedence over any opcode
// table entry of the same name.
//
//	directive	operand		size			object code
//	---------	-------		----			-----------
//	START		hex address	0			none
//	END		ignored		0			none, ends pass 2
//	WORD		decimal		3			6 hex digits, 24 bits two's complement
//	RESW		decimal n	3 × n			none
//	RESB		decimal n	n			none
//	BYTE		C'...' or X'...'	len(operand) - 3	character codes or hex digits
//
// Any other mnemonic is looked up in the opcode table (see package optab). A
// machine instruction is 3 bytes long and its object code is the opcode as
// loaded followed by the 4 hex digits address of the operand symbol. An
// operand that is "-" or not a known symbol resolves to address 0. Mnemonics
// that are neither directives nor in the opcode table take no space and
// produce no object code.
//
// Only the first START statement sets the start address and the program name
// (its label). Its address in listings is "-". The location counter starts at
// 0 if there is no START statement.
//
// Errors:
//
// Malformed numbers (START, WORD, RESW and RESB operands), malformed BYTE
// literals and a location counter going past FFFFFF are fatal: the run stops
// and no output is produced. Duplicate labels and undefined operand symbols
// are only reported as diagnostics; the first definition of a label wins. The
// Strict option turns diagnostics into errors.
//
// Output:
//
// A successful run returns a Result that provides the intermediate listing,
// the symbol table, the program length, the final listing with object code,
// and the object program (see package obj).
package asm
