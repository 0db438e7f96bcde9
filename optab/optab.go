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

// Package optab loads the opcode table that maps machine instruction
// mnemonics to their hexadecimal opcode.
//
// The table text is read line by line. A line contributes an entry only if it
// holds exactly two whitespace separated tokens:
//
//	LDA	00
//	STA	0C
//
// Any other line is silently skipped. Opcodes are kept verbatim, as loaded.
package optab

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Table maps mnemonics to opcodes.
type Table struct {
	codes map[string]string
}

// New returns an empty table.
func New() *Table {
	return &Table{codes: make(map[string]string)}
}

// Load reads a new table from r.
func Load(r io.Reader) (*Table, error) {
	t := New()
	if err := t.Reload(r); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload clears the table and fills it again from r. On read error, the table
// is left empty.
func (t *Table) Reload(r io.Reader) error {
	t.codes = make(map[string]string)
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		f := strings.Fields(s.Text())
		if len(f) != 2 {
			if len(f) > 0 {
				glog.V(2).Infof("optab: line %d skipped: %d fields", line, len(f))
			}
			continue
		}
		t.codes[f[0]] = f[1]
	}
	if err := s.Err(); err != nil {
		t.codes = make(map[string]string)
		return errors.Wrap(err, "optab read failed")
	}
	glog.V(1).Infof("optab: %d opcodes loaded", len(t.codes))
	return nil
}

// Set adds or replaces the opcode for mnemonic m.
func (t *Table) Set(m, code string) {
	t.codes[m] = code
}

// Lookup returns the opcode for mnemonic m.
func (t *Table) Lookup(m string) (code string, ok bool) {
	code, ok = t.codes[m]
	return
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.codes)
}

// Mnemonics returns the sorted list of mnemonics in the table.
func (t *Table) Mnemonics() []string {
	l := make([]string, 0, len(t.codes))
	for m := range t.codes {
		l = append(l, m)
	}
	sort.Strings(l)
	return l
}
