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
	"fmt"
	"os"

	"github.com/db47h/sicasm/obj"
	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var loadFlags struct {
	out  string
	dump bool
}

var loadCmd = &cobra.Command{
	Use:   "load OBJECT",
	Short: "Load an object program into a memory image",
	Long: `Load reads the object program in the OBJECT file and builds the memory image
it describes. The image is hex dumped to stdout, or saved as a raw binary file
with -o.

The object code of each Text record is placed at consecutive addresses. Object
programs assembled without --split hold all their code in a single Text record,
so code following reserved storage (RESW, RESB) or an X'..' BYTE literal is
loaded at the wrong address. A warning is printed when a single Text record
leaves part of the program uninitialized. Assemble with --split to get a
correct image.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadObject(args[0])
		if err != nil {
			return err
		}
		if loadFlags.dump {
			pp.Fprintln(cmd.ErrOrStderr(), p)
		}
		if msg := layoutWarning(p); msg != "" {
			glog.Warningf("%s: %s", args[0], msg)
			cmd.PrintErrf("warning: %s: %s\n", args[0], msg)
		}
		mem, err := p.Image()
		if err != nil {
			return errors.Wrap(err, args[0])
		}
		if loadFlags.out != "" {
			return obj.SaveImage(loadFlags.out, mem)
		}
		w := bufio.NewWriter(cmd.OutOrStdout())
		if err = obj.HexDump(w, mem, p.Header.Start); err != nil {
			return err
		}
		return errors.Wrap(w.Flush(), "write failed")
	},
}

func init() {
	loadCmd.Flags().StringVarP(&loadFlags.out, "out", "o", "", "save the memory image to `filename`")
	loadCmd.Flags().BoolVar(&loadFlags.dump, "dump", false, "pretty print the parsed object program to stderr")
	rootCmd.AddCommand(loadCmd)
}

func loadObject(name string) (*obj.Program, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	p, err := obj.Parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return p, nil
}

// layoutWarning returns a non-empty message if the memory image of p may be
// wrong: it has a single Text record that does not initialize the whole
// program.
func layoutWarning(p *obj.Program) string {
	if len(p.Text) != 1 {
		return ""
	}
	u := p.Uncovered()
	if u == 0 {
		return ""
	}
	return fmt.Sprintf("single Text record leaves %X of %X bytes uninitialized, code may be misplaced (assemble with --split)", u, p.Header.Length)
}
