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

package obj_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/sicasm/obj"
)

// Load an object program and dump the resulting memory image.
func ExampleParse() {
	src := `H^FIRST ^000100^000014
T^000100^03^141010
T^000110^04^454F46^01
E^000100
`
	p, err := obj.Parse(strings.NewReader(src))
	if err != nil {
		fmt.Println(err)
		return
	}
	img, err := p.Image()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%q starts at %06X\n", p.Header.Name, p.Header.Start)
	obj.HexDump(os.Stdout, img, p.Header.Start)

	// Output:
	// "FIRST" starts at 000100
	// 000100: 14 10 10 00 00 00 00 00 00 00 00 00 00 00 00 00
	// 000110: 45 4F 46 01
}
