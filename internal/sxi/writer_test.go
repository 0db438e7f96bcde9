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

package sxi_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/db47h/sicasm/internal/sxi"
	"github.com/pkg/errors"
)

type failWriter int

func (f *failWriter) Write(p []byte) (int, error) {
	if *f <= 0 {
		return 0, io.ErrShortWrite
	}
	*f--
	return len(p), nil
}

func TestWriteRow(t *testing.T) {
	var b bytes.Buffer
	if err := sxi.WriteRow(&b, "1000", "FIRST", "LDA", "ALPHA", ""); err != nil {
		t.Fatal(err)
	}
	if err := sxi.WriteRow(&b); err != nil {
		t.Fatal(err)
	}
	exp := "1000\tFIRST\tLDA\tALPHA\t\n\n"
	if s := b.String(); s != exp {
		t.Fatalf("Expected %q, got %q", exp, s)
	}
}

func TestErrWriter_sticky(t *testing.T) {
	fw := failWriter(2)
	ew := sxi.NewErrWriter(&fw)
	if sxi.NewErrWriter(ew) != ew {
		t.Fatal("NewErrWriter should not wrap an *ErrWriter twice")
	}
	err := sxi.WriteRow(ew, "a", "b")
	if errors.Cause(err) != io.ErrShortWrite {
		t.Fatalf("Expected short write, got %v", err)
	}
	// the underlying writer is not called anymore once an error is recorded
	fw = 10
	if _, err = ew.Write([]byte("x")); errors.Cause(err) != io.ErrShortWrite {
		t.Fatalf("Expected sticky error, got %v", err)
	}
	if fw != 10 {
		t.Fatalf("Write went through after error")
	}
}
