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

// Symbol is a label bound to an address.
type Symbol struct {
	Name string
	Addr uint32
	Pos  Position // where the label is defined
}

// SymbolTable maps labels to addresses. It is populated by pass 1 only and
// keeps symbols in definition order.
type SymbolTable struct {
	index map[string]int
	syms  []Symbol
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]int)}
}

// define binds name to addr. If name is already defined, the existing binding
// is kept and returned along with false.
func (t *SymbolTable) define(name string, addr uint32, pos Position) (Symbol, bool) {
	if i, ok := t.index[name]; ok {
		return t.syms[i], false
	}
	t.index[name] = len(t.syms)
	t.syms = append(t.syms, Symbol{name, addr, pos})
	return t.syms[len(t.syms)-1], true
}

// Lookup returns the address bound to name.
func (t *SymbolTable) Lookup(name string) (addr uint32, ok bool) {
	i, ok := t.index[name]
	if !ok {
		return 0, false
	}
	return t.syms[i].Addr, true
}

// Len returns the number of symbols in the table.
func (t *SymbolTable) Len() int {
	return len(t.syms)
}

// Symbols returns a copy of the symbols in definition order.
func (t *SymbolTable) Symbols() []Symbol {
	return append([]Symbol(nil), t.syms...)
}
