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

package asm

import (
	"fmt"
	"io"

	"github.com/db47h/sicasm/internal/sxi"
)

// WriteIntermediate writes the intermediate listing to w, one statement per
// line:
//
//	address	label	mnemonic	operand
//
// The address is in hex with no padding, "-" for the START statement.
func (r *Result) WriteIntermediate(w io.Writer) error {
	ew := sxi.NewErrWriter(w)
	for i := range r.Statements {
		st := &r.Statements[i]
		if sxi.WriteRow(ew, st.AddrString(), st.Label, st.Mnemonic, st.Operand) != nil {
			break
		}
	}
	return ew.Err
}

// WriteSymbols writes the symbol table to w in definition order, one
// "label<TAB>address" line per symbol.
func (r *Result) WriteSymbols(w io.Writer) error {
	ew := sxi.NewErrWriter(w)
	for _, s := range r.Symbols.syms {
		if sxi.WriteRow(ew, s.Name, fmt.Sprintf("%X", s.Addr)) != nil {
			break
		}
	}
	return ew.Err
}

// WriteLength writes the program length line to w.
func (r *Result) WriteLength(w io.Writer) error {
	ew := sxi.NewErrWriter(w)
	fmt.Fprintf(ew, "Program Length: %X\n", r.Length)
	return ew.Err
}

// WriteListing writes the pass 2 listing to w. It is the same as the
// intermediate listing, up to the END statement, with an additional object
// code column.
func (r *Result) WriteListing(w io.Writer) error {
	ew := sxi.NewErrWriter(w)
	for _, l := range r.Listing {
		if sxi.WriteRow(ew, l.AddrString(), l.Label, l.Mnemonic, l.Operand, l.Code) != nil {
			break
		}
	}
	return ew.Err
}

// WriteObject writes the object program to w.
func (r *Result) WriteObject(w io.Writer) error {
	_, err := r.Program.WriteTo(w)
	return err
}
