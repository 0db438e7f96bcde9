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

// Package obj implements the textual SIC object program: a Header record,
// zero or more Text records and an End record, one record per line, with
// fields separated by '^':
//
//	H^COPY  ^001000^000006
//	T^001000^06^001003^000005
//	E^001000
//
// Addresses and lengths are upper case hexadecimal. A Text record holds the
// object code of consecutive statements, each one in its own field.
package obj

import (
	"fmt"
	"io"
	"strings"

	"github.com/db47h/sicasm/internal/sxi"
)

// NameLen is the width of the program name field in a Header record.
const NameLen = 6

// Header is the H record.
type Header struct {
	Name   string
	Start  uint32
	Length uint32
}

// FieldName returns the program name left justified and padded or truncated
// to NameLen characters.
func (h *Header) FieldName() string {
	n := h.Name
	if len(n) > NameLen {
		n = n[:NameLen]
	}
	return fmt.Sprintf("%-*s", NameLen, n)
}

func (h *Header) String() string {
	return fmt.Sprintf("H^%s^%06X^%06X", h.FieldName(), h.Start, h.Length)
}

// Text is a T record. Each entry in Code is the object code of a single
// statement, as a string of hex digits.
type Text struct {
	Start uint32
	Code  []string
}

// Len returns the length in bytes of the object code in the record. Each pair
// of hex digits counts as one byte.
func (t *Text) Len() int {
	var n int
	for _, c := range t.Code {
		n += len(c) / 2
	}
	return n
}

func (t *Text) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "T^%06X^%02X", t.Start, t.Len())
	for _, c := range t.Code {
		b.WriteByte('^')
		b.WriteString(c)
	}
	return b.String()
}

// End is the E record.
type End struct {
	Entry uint32
}

func (e *End) String() string {
	return fmt.Sprintf("E^%06X", e.Entry)
}

// Program is a complete object program.
type Program struct {
	Header Header
	Text   []Text
	End    End
}

// WriteTo writes the object program to w, one record per line.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	ew := sxi.NewErrWriter(w)
	var n int64
	put := func(s string) {
		k, _ := io.WriteString(ew, s+"\n")
		n += int64(k)
	}
	put(p.Header.String())
	for i := range p.Text {
		put(p.Text[i].String())
	}
	put(p.End.String())
	return n, ew.Err
}

func (p *Program) String() string {
	var b strings.Builder
	p.WriteTo(&b)
	return b.String()
}
