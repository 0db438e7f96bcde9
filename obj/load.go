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

package obj

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/db47h/sicasm/internal/sxi"
	"github.com/pkg/errors"
)

func parseHex(field, what string, line int) (uint32, error) {
	v, err := strconv.ParseUint(field, 16, 32)
	if err != nil {
		return 0, errors.Errorf("line %d: invalid %s %q", line, what, field)
	}
	return uint32(v), nil
}

// Parse reads an object program from r. Empty lines are ignored. The program
// must start with a Header record and finish with an End record.
func Parse(r io.Reader) (*Program, error) {
	var (
		p         Program
		hdr, end  bool
		line      int
		err       error
		s         = bufio.NewScanner(r)
		textStart uint32
		textLen   uint32
	)
	for s.Scan() {
		line++
		l := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		if end {
			return nil, errors.Errorf("line %d: record after End record", line)
		}
		f := strings.Split(l, "^")
		switch f[0] {
		case "H":
			if hdr {
				return nil, errors.Errorf("line %d: duplicate Header record", line)
			}
			if len(f) != 4 {
				return nil, errors.Errorf("line %d: Header record has %d fields, expected 4", line, len(f))
			}
			p.Header.Name = strings.TrimRight(f[1], " ")
			if p.Header.Start, err = parseHex(f[2], "start address", line); err != nil {
				return nil, err
			}
			if p.Header.Length, err = parseHex(f[3], "program length", line); err != nil {
				return nil, err
			}
			hdr = true
		case "T":
			if !hdr {
				return nil, errors.Errorf("line %d: Text record before Header record", line)
			}
			if len(f) < 4 {
				return nil, errors.Errorf("line %d: Text record has no object code", line)
			}
			if textStart, err = parseHex(f[1], "text address", line); err != nil {
				return nil, err
			}
			if textLen, err = parseHex(f[2], "text length", line); err != nil {
				return nil, err
			}
			t := Text{Start: textStart, Code: f[3:]}
			if int(textLen) != t.Len() {
				return nil, errors.Errorf("line %d: Text record length is %X, object code is %X bytes", line, textLen, t.Len())
			}
			p.Text = append(p.Text, t)
		case "E":
			if !hdr {
				return nil, errors.Errorf("line %d: End record before Header record", line)
			}
			if len(f) != 2 {
				return nil, errors.Errorf("line %d: End record has %d fields, expected 2", line, len(f))
			}
			if p.End.Entry, err = parseHex(f[1], "entry address", line); err != nil {
				return nil, err
			}
			end = true
		default:
			return nil, errors.Errorf("line %d: unknown record type %q", line, f[0])
		}
	}
	if err = s.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	if !hdr {
		return nil, errors.New("missing Header record")
	}
	if !end {
		return nil, errors.New("missing End record")
	}
	return &p, nil
}

// Image returns the memory image described by the program. The image covers
// addresses Header.Start to Header.Start+Header.Length. Bytes not covered by a
// Text record are zero.
//
// The object code of a Text record is placed at consecutive addresses. An
// object program written as a single Text record over a program with reserved
// storage (RESW, RESB) or X'..' BYTE literals does not have that property:
// code following the first gap lands at the wrong address. Uncovered helps
// detecting such programs.
func (p *Program) Image() ([]byte, error) {
	mem := make([]byte, p.Header.Length)
	for i := range p.Text {
		t := &p.Text[i]
		b, err := hex.DecodeString(strings.Join(t.Code, ""))
		if err != nil {
			return nil, errors.Wrapf(err, "Text record at %06X", t.Start)
		}
		if t.Start < p.Header.Start || uint64(t.Start-p.Header.Start)+uint64(len(b)) > uint64(len(mem)) {
			return nil, errors.Errorf("Text record at %06X out of program bounds", t.Start)
		}
		copy(mem[t.Start-p.Header.Start:], b)
	}
	return mem, nil
}

// Uncovered returns the number of bytes between Header.Start and
// Header.Start+Header.Length that no Text record initializes. Parts of Text
// records outside of that range are ignored.
func (p *Program) Uncovered() uint32 {
	type span struct{ lo, hi uint64 }
	start := uint64(p.Header.Start)
	end := start + uint64(p.Header.Length)
	spans := make([]span, 0, len(p.Text))
	for i := range p.Text {
		lo := uint64(p.Text[i].Start)
		hi := lo + uint64(p.Text[i].Len())
		if lo < start {
			lo = start
		}
		if hi > end {
			hi = end
		}
		if lo < hi {
			spans = append(spans, span{lo, hi})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	covered, last := uint64(0), start
	for _, s := range spans {
		if s.lo < last {
			s.lo = last
		}
		if s.lo < s.hi {
			covered += s.hi - s.lo
			last = s.hi
		}
	}
	return uint32(end - start - covered)
}

// SaveImage saves a memory image to a raw binary file. The file is removed if
// any error occurs.
func SaveImage(fileName string, mem []byte) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "flush failed")
		}
		if e := f.Close(); err == nil && e != nil {
			err = errors.Wrap(e, "close failed")
		}
		if err != nil {
			os.Remove(fileName)
		}
	}()
	if _, err = w.Write(mem); err != nil {
		return errors.Wrap(err, "write failed")
	}
	return nil
}

// HexDump writes a hex dump of mem to w, 16 bytes per line. The base argument
// is the address of mem[0].
func HexDump(w io.Writer, mem []byte, base uint32) error {
	ew := sxi.NewErrWriter(w)
	for i := 0; i < len(mem); i += 16 {
		end := i + 16
		if end > len(mem) {
			end = len(mem)
		}
		fmt.Fprintf(ew, "%06X:", base+uint32(i))
		for _, c := range mem[i:end] {
			fmt.Fprintf(ew, " %02X", c)
		}
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
