package patch

import (
	"fmt"
	"strconv"
	"strings"
)

// template is a parsed replacement template.
// Literal text and group references alternate in parts.
type template struct {
	parts []part
}

// part is either literal text (group < 0) or a capture group reference.
type part struct {
	text  string
	group int
}

// parseTemplate resolves $0, $1, ${1}, $name and ${name} against the
// pattern's groups. names is the pattern's SubexpNames, where names[0]
// is the whole match. $$ is a literal dollar; a malformed $ is kept as
// text. A reference to a group the pattern does not define is an error.
func parseTemplate(src string, names []string) (template, error) {
	var t template
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.parts = append(t.parts, part{text: lit.String(), group: -1})
			lit.Reset()
		}
	}

	for i := 0; i < len(src); {
		c := src[i]
		if c != '$' || i+1 >= len(src) {
			lit.WriteByte(c)
			i++
			continue
		}
		if src[i+1] == '$' {
			lit.WriteByte('$')
			i += 2
			continue
		}

		name, width, ok := extractName(src[i+1:])
		if !ok {
			lit.WriteByte('$')
			i++
			continue
		}

		group, err := resolveGroup(name, names)
		if err != nil {
			return template{}, err
		}
		flush()
		t.parts = append(t.parts, part{group: group})
		i += 1 + width
	}
	flush()
	return t, nil
}

// extractName reads a group name after '$': either {name} or the
// longest run of letters, digits and underscores. width is the number
// of bytes consumed.
func extractName(s string) (name string, width int, ok bool) {
	braced := false
	if s[0] == '{' {
		braced = true
		s = s[1:]
	}

	n := 0
	for n < len(s) && isNameByte(s[n]) {
		n++
	}
	if n == 0 {
		return "", 0, false
	}

	if !braced {
		return s[:n], n, true
	}
	if n >= len(s) || s[n] != '}' {
		return "", 0, false
	}
	return s[:n], n + 2, true
}

func isNameByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func resolveGroup(name string, names []string) (int, error) {
	if num, err := strconv.Atoi(name); err == nil {
		if num < 0 || num >= len(names) {
			return 0, fmt.Errorf("template references group %d but pattern has %d", num, len(names)-1)
		}
		return num, nil
	}
	for i, n := range names {
		if i > 0 && n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("template references unknown group %q", name)
}

// expand writes the template for one match. m holds index pairs for
// the whole match and every group; unmatched groups expand to nothing.
func (t template) expand(b *strings.Builder, src string, m []int) {
	for _, p := range t.parts {
		if p.group < 0 {
			b.WriteString(p.text)
			continue
		}
		lo, hi := 2*p.group, 2*p.group+1
		if hi < len(m) && m[lo] >= 0 && m[hi] >= 0 {
			b.WriteString(src[m[lo]:m[hi]])
		}
	}
}
