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
	"strconv"
	"strings"
)

// Position is a source position.
type Position struct {
	Filename string
	Line     int // 1-based
}

func (p Position) String() string {
	if p.Filename == "" {
		return strconv.Itoa(p.Line)
	}
	return p.Filename + ":" + strconv.Itoa(p.Line)
}

// ErrorKind classifies an Error.
type ErrorKind int

// Error kinds. ErrDuplicate and ErrUndefined are only fatal in strict mode.
const (
	ErrSyntax ErrorKind = iota
	ErrNumber
	ErrDuplicate
	ErrUndefined
)

var kindNames = [...]string{
	ErrSyntax:    "syntax error",
	ErrNumber:    "invalid number",
	ErrDuplicate: "duplicate label",
	ErrUndefined: "undefined symbol",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Error is an assembly error or diagnostic at a given source position.
type Error struct {
	Pos  Position
	Kind ErrorKind
	Msg  string
}

func newError(pos Position, kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{pos, kind, fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Kind.String() + ": " + e.Msg
}

// maxErrors is the maximum number of entries in an ErrAsm.
const maxErrors = 10

// ErrAsm is returned by strict mode runs that collected diagnostics. It holds
// at most 10 entries.
type ErrAsm []*Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

func newErrAsm(diags []*Error) ErrAsm {
	if len(diags) > maxErrors {
		diags = diags[:maxErrors]
	}
	return append(ErrAsm(nil), diags...)
}
