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

// MaxTextLen is the largest record length the two hex digits of a Text
// record's length field can hold.
const MaxTextLen = 0xFF

// TextBuilder accumulates object code into Text records.
//
// With a zero limit, all the code ends up in a single record that is only
// flushed by Records, whatever its length. With a positive limit, a new
// record is started whenever adding code would make the current one longer
// than limit bytes, and Break ends the current record.
type TextBuilder struct {
	limit int
	cur   Text
	n     int
	recs  []Text
}

// NewTextBuilder returns a new TextBuilder with the given record length limit
// in bytes.
func NewTextBuilder(limit int) *TextBuilder {
	return &TextBuilder{limit: limit}
}

// Add appends the object code of the statement at address addr.
func (b *TextBuilder) Add(addr uint32, code string) {
	if code == "" {
		return
	}
	l := len(code) / 2
	if b.limit > 0 && len(b.cur.Code) > 0 && b.n+l > b.limit {
		b.flush()
	}
	if len(b.cur.Code) == 0 {
		b.cur.Start = addr
	}
	b.cur.Code = append(b.cur.Code, code)
	b.n += l
}

// Break ends the current record if the builder has a limit. It is a no-op
// otherwise.
func (b *TextBuilder) Break() {
	if b.limit > 0 {
		b.flush()
	}
}

func (b *TextBuilder) flush() {
	if len(b.cur.Code) > 0 {
		b.recs = append(b.recs, b.cur)
	}
	b.cur = Text{}
	b.n = 0
}

// Records flushes any pending code and returns all records.
func (b *TextBuilder) Records() []Text {
	b.flush()
	return b.recs
}
