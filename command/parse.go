// SPDX-License-Identifier: MIT

package command

import "strings"

// Command is one parsed input line: a Kind and its raw arguments.
type Command struct {
	Kind Kind
	Args []string
}

// Parse splits line on whitespace and looks up the first field.
// It reports false for blank lines and unknown tokens, which callers ignore.
// Arguments are kept verbatim; Engine.Execute validates them.
func Parse(line string) (Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}
	k, ok := Lookup(fields[0])
	if !ok {
		return Command{}, false
	}

	return Command{Kind: k, Args: fields[1:]}, true
}

// String reassembles the command as a user would type it.
func (c Command) String() string {
	return strings.Join(append([]string{c.Kind.Token()}, c.Args...), " ")
}
