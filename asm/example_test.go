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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/sicasm/asm"
	"github.com/db47h/sicasm/optab"
)

const copySrc = `. a small program
COPY	START	1000
FIRST	LDA	ALPHA
-	STA	BETA
-	J	FIRST
ALPHA	WORD	5
BETA	RESW	1
EOF	BYTE	C'EOF'
HEX	BYTE	X'F1'
-	END	FIRST
`

const copyOptab = `LDA 00
STA 0C
J 3C
`

func ExampleAssemble() {
	tab, err := optab.Load(strings.NewReader(copyOptab))
	if err != nil {
		fmt.Println(err)
		return
	}
	r, err := asm.Assemble("copy", strings.NewReader(copySrc), tab)
	if err != nil {
		fmt.Println(err)
		return
	}

	r.WriteSymbols(os.Stdout)
	r.WriteLength(os.Stdout)
	r.WriteObject(os.Stdout)

	// Output:
	// FIRST	1000
	// ALPHA	1009
	// BETA	100C
	// EOF	100F
	// HEX	1012
	// Program Length: 14
	// H^COPY  ^001000^000014
	// T^001000^10^001009^0C100C^3C1000^000005^454F46^F1
	// E^001000
}

// With a record length limit, Text records are also split at storage
// reservations.
func ExampleMaxTextBytes() {
	tab, _ := optab.Load(strings.NewReader(copyOptab))
	r, err := asm.Assemble("copy", strings.NewReader(copySrc), tab, asm.MaxTextBytes(30))
	if err != nil {
		fmt.Println(err)
		return
	}
	r.WriteObject(os.Stdout)

	// Output:
	// H^COPY  ^001000^000014
	// T^001000^0C^001009^0C100C^3C1000^000005
	// T^00100F^04^454F46^F1
	// E^001000
}

// Duplicate labels and undefined symbols are diagnostics. They do not stop the
// assembly unless the Strict option is set.
func ExampleStrict() {
	src := `PROG START 0
LOOP LDA DATA
LOOP J LOOP
- END PROG
`
	tab, _ := optab.Load(strings.NewReader(copyOptab))
	r, err := asm.Assemble("prog", strings.NewReader(src), tab)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, d := range r.Diagnostics {
		fmt.Println(d)
	}
	r.WriteObject(os.Stdout)

	_, err = asm.Assemble("prog", strings.NewReader(src), tab, asm.Strict(true))
	fmt.Println(err)

	// Output:
	// prog:3: duplicate label: LOOP, previous definition here: prog:2
	// prog:2: undefined symbol: DATA
	// H^PROG  ^000000^000006
	// T^000000^06^000000^3C0000
	// E^000000
	// prog:3: duplicate label: LOOP, previous definition here: prog:2
}
