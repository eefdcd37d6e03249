// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"strings"
)

// Kind identifies one editor command.
type Kind uint8

const (
	KindUnknown    Kind = iota
	KindCreate          // I
	KindClear           // C
	KindPixel           // L
	KindVertical        // V
	KindHorizontal      // H
	KindRect            // K
	KindFill            // F
	KindSave            // S
	KindQuit            // X
)

// entry describes one row of the command table.
type entry struct {
	token string
	name  string
	arity int
}

// table is indexed by Kind.
var table = [...]entry{
	KindUnknown:    {"", "unknown", 0},
	KindCreate:     {"I", "create", 2},
	KindClear:      {"C", "clear", 0},
	KindPixel:      {"L", "pixel", 3},
	KindVertical:   {"V", "vertical", 4},
	KindHorizontal: {"H", "horizontal", 4},
	KindRect:       {"K", "rect", 5},
	KindFill:       {"F", "fill", 3},
	KindSave:       {"S", "save", 1},
	KindQuit:       {"X", "quit", 0},
}

// byToken is built from table at init.
var byToken = func() map[string]Kind {
	m := make(map[string]Kind, len(table))
	for k, s := range table {
		if s.token != "" {
			m[s.token] = Kind(k)
		}
	}

	return m
}()

// Lookup maps a command token to its Kind, ignoring case.
func Lookup(token string) (Kind, bool) {
	k, ok := byToken[strings.ToUpper(token)]

	return k, ok
}

// Kinds returns every known Kind in table order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(table)-1)
	for k := KindCreate; int(k) < len(table); k++ {
		out = append(out, k)
	}

	return out
}

func (k Kind) valid() bool {
	return k > KindUnknown && int(k) < len(table)
}

// Token returns the single-letter token typed by users, or "" for unknown kinds.
func (k Kind) Token() string {
	if !k.valid() {
		return ""
	}

	return table[k].token
}

// Arity returns the number of arguments the command takes.
func (k Kind) Arity() int {
	if !k.valid() {
		return 0
	}

	return table[k].arity
}

// String returns a lower-case name such as "fill".
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return table[k].name
}
