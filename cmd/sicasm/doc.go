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

// The sicasm command line tool is a front end for the packages
// github.com/db47h/sicasm/asm and github.com/db47h/sicasm/obj.
//
// Usage:
//
//	sicasm asm SOURCE OPTAB [flags]
//	sicasm load OBJECT [flags]
//
// asm flags:
//
//	-d, --dir directory
//		  write each output to its own file in directory
//	--split n
//		  split Text records at RESW/RESB and after n bytes (0: single record)
//	--strict
//		  fail on duplicate labels and undefined symbols
//	--dump
//		  pretty print the assembler result to stderr
//
// load flags:
//
//	-o, --out filename
//		  save the memory image to filename
//	--dump
//		  pretty print the parsed object program to stderr
//
// Global flags:
//
//	--debug
//		  print errors with a stack trace
//	-v, --logtostderr, ...
//		  glog flags. Use -v=1 to trace passes, -v=2 to trace statements.
//
// asm: assembles SOURCE using the opcode table in OPTAB. If assembly succeeds,
// the five outputs are written, in this order: intermediate listing, symbol
// table, program length, final listing and object program. Without -d, they
// are written to stdout, each preceded by a "== name ==" line. With -d, they
// are written to intermediate.txt, symtab.txt, length.txt, listing.txt and
// object.txt in the given directory. Nothing is written if assembly fails.
//
// load: parses the object program in OBJECT and builds its memory image,
// covering the program start address to start+length. The image is hex dumped
// to stdout, unless -o is given. The code of each Text record is loaded at
// consecutive addresses, so only objects assembled with --split load correctly
// when the program reserves storage or uses X'..' BYTE literals. load warns
// about single Text record objects that leave part of the program
// uninitialized.
package main
