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
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/db47h/sicasm/asm"
	"github.com/db47h/sicasm/optab"
	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var asmFlags struct {
	dir    string
	split  int
	strict bool
	dump   bool
}

var asmCmd = &cobra.Command{
	Use:   "asm SOURCE OPTAB",
	Short: "Assemble a source file",
	Long: `Asm assembles the SOURCE file using the opcode table in the OPTAB file.

On success, it outputs the intermediate listing, the symbol table, the
program length, the final listing with object code and the object program.
Nothing is output if assembly fails.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := assembleFile(args[0], args[1], asm.MaxTextBytes(asmFlags.split), asm.Strict(asmFlags.strict))
		if err != nil {
			return err
		}
		if asmFlags.dump {
			pp.Fprintln(cmd.ErrOrStderr(), r)
		}
		if asmFlags.dir != "" {
			return writeFiles(r, asmFlags.dir)
		}
		return writeSections(r, cmd.OutOrStdout())
	},
}

func init() {
	f := asmCmd.Flags()
	f.StringVarP(&asmFlags.dir, "dir", "d", "", "write each output to its own file in `directory`")
	f.IntVar(&asmFlags.split, "split", 0, "split Text records at RESW/RESB and after `n` bytes (0: single record)")
	f.BoolVar(&asmFlags.strict, "strict", false, "fail on duplicate labels and undefined symbols")
	f.BoolVar(&asmFlags.dump, "dump", false, "pretty print the assembler result to stderr")
	rootCmd.AddCommand(asmCmd)
}

func assembleFile(srcName, optabName string, opts ...asm.Option) (*asm.Result, error) {
	f, err := os.Open(optabName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	tab, err := optab.Load(bufio.NewReader(f))
	f.Close()
	if err != nil {
		return nil, errors.Wrap(err, optabName)
	}

	src, err := os.Open(srcName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer src.Close()
	return asm.Assemble(srcName, bufio.NewReader(src), tab, opts...)
}

var outputs = [...]struct {
	name  string
	write func(*asm.Result, io.Writer) error
}{
	{"intermediate", (*asm.Result).WriteIntermediate},
	{"symtab", (*asm.Result).WriteSymbols},
	{"length", (*asm.Result).WriteLength},
	{"listing", (*asm.Result).WriteListing},
	{"object", (*asm.Result).WriteObject},
}

func writeSections(r *asm.Result, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, o := range outputs {
		if _, err := io.WriteString(bw, "== "+o.name+" ==\n"); err != nil {
			return errors.Wrap(err, "write failed")
		}
		if err := o.write(r, bw); err != nil {
			return err
		}
	}
	return errors.Wrap(bw.Flush(), "write failed")
}

func writeFiles(r *asm.Result, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "mkdir failed")
	}
	for _, o := range outputs {
		if err := writeFile(filepath.Join(dir, o.name+".txt"), func(w io.Writer) error { return o.write(r, w) }); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "write failed")
		}
		if e := f.Close(); err == nil && e != nil {
			err = errors.Wrap(e, "close failed")
		}
	}()
	return write(w)
}
