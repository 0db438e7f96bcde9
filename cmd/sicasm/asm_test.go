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

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/sicasm/asm"
	"github.com/db47h/sicasm/obj"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	fn := filepath.Join(dir, name)
	if err := ioutil.WriteFile(fn, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestAssembleAndLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "sicasm")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	src := writeTemp(t, dir, "copy.asm", "COPY START 1000\nFIRST LDA ALPHA\nALPHA WORD 5\nEND FIRST\n")
	tab := writeTemp(t, dir, "optab.txt", "LDA 00\n")
	r, err := assembleFile(src, tab, asm.MaxTextBytes(30))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	var b bytes.Buffer
	if err = writeSections(r, &b); err != nil {
		t.Fatal(err)
	}
	for _, o := range outputs {
		if !strings.Contains(b.String(), "== "+o.name+" ==\n") {
			t.Errorf("missing section %s in:\n%s", o.name, b.String())
		}
	}

	out := filepath.Join(dir, "out")
	if err = writeFiles(r, out); err != nil {
		t.Fatal(err)
	}
	l, err := ioutil.ReadFile(filepath.Join(out, "length.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(l) != "Program Length: 6\n" {
		t.Fatalf("Unexpected length file content %q", l)
	}

	p, err := loadObject(filepath.Join(out, "object.txt"))
	if err != nil {
		t.Fatal(err)
	}
	mem, err := p.Image()
	if err != nil {
		t.Fatal(err)
	}
	b.Reset()
	obj.HexDump(&b, mem, p.Header.Start)
	if s := b.String(); s != "001000: 00 10 03 00 00 05\n" {
		t.Fatalf("Unexpected dump %q", s)
	}
}

func TestAssembleFile_errors(t *testing.T) {
	dir, err := ioutil.TempDir("", "sicasm")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	tab := writeTemp(t, dir, "optab.txt", "LDA 00\n")
	bad := writeTemp(t, dir, "bad.asm", "P START XYZ\n")

	if _, err = assembleFile(filepath.Join(dir, "nope.asm"), tab); err == nil {
		t.Error("missing source: expected error")
	}
	if _, err = assembleFile(bad, filepath.Join(dir, "nope.txt")); err == nil {
		t.Error("missing optab: expected error")
	}
	if _, err = assembleFile(bad, tab); err == nil {
		t.Error("bad source: expected error")
	}
}

const copySrc = `COPY START 1000
FIRST LDA ALPHA
- STA BETA
- J FIRST
ALPHA WORD 5
BETA RESW 1
EOF BYTE C'EOF'
HEX BYTE X'F1'
- END FIRST
`

func loadCopy(t *testing.T, dir, name string, opts ...asm.Option) *obj.Program {
	src := writeTemp(t, dir, "copy.asm", copySrc)
	tab := writeTemp(t, dir, "optab.txt", "LDA 00\nSTA 0C\nJ 3C\n")
	r, err := assembleFile(src, tab, opts...)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	out := filepath.Join(dir, name)
	if err = writeFiles(r, out); err != nil {
		t.Fatal(err)
	}
	p, err := loadObject(filepath.Join(out, "object.txt"))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// Without --split, code after BETA is shifted down in the image. The loader
// must say so.
func TestLoad_layout(t *testing.T) {
	dir, err := ioutil.TempDir("", "sicasm")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	p := loadCopy(t, dir, "single")
	if len(p.Text) != 1 {
		t.Fatalf("Expected a single Text record, got %d", len(p.Text))
	}
	if u := p.Uncovered(); u != 4 {
		t.Fatalf("Expected 4 uncovered bytes, got %X", u)
	}
	if msg := layoutWarning(p); msg == "" {
		t.Fatal("Expected a layout warning for a single Text record")
	}

	p = loadCopy(t, dir, "split", asm.MaxTextBytes(30))
	if msg := layoutWarning(p); msg != "" {
		t.Fatalf("Unexpected layout warning %q", msg)
	}
	mem, err := p.Image()
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	obj.HexDump(&b, mem, p.Header.Start)
	// EOF is at 100F and HEX at 1012
	exp := "001000: 00 10 09 0C 10 0C 3C 10 00 00 00 05 00 00 00 45\n" +
		"001010: 4F 46 F1 00\n"
	if s := b.String(); s != exp {
		t.Fatalf("Unexpected dump:\n%s\nexpected:\n%s", s, exp)
	}
}
