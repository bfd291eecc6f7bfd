package winpath

import "strings"

// Join combines lhs and rhs with exactly one separator between them.
//
// When either side is empty the other is returned as it is, so no trailing
// separator is added. When neither side has a separator at the junction, the
// separator of p is inserted; otherwise the separators at the junction
// collapse into the first of them. An absolute rhs does not replace lhs.
// The result is cut to the path capacity, and only what fits is built.
func (p *Paths) Join(lhs, rhs string) string {
	lhs, rhs = terminate(lhs), terminate(rhs)

	switch {
	case lhs == "":
		return bound(rhs, p.limits.Path)
	case rhs == "":
		return bound(lhs, p.limits.Path)
	}

	head := strings.TrimRightFunc(lhs, isSeparatorRune)
	tail := strings.TrimLeftFunc(rhs, isSeparatorRune)

	sep := p.separator
	switch {
	case len(head) < len(lhs):
		sep = lhs[len(head)]
	case len(tail) < len(rhs):
		sep = rhs[0]
	}

	n := p.limits.Path
	if len(head) >= n {
		return head[:n]
	}

	tail = tail[:min(len(tail), n-len(head)-1)]

	var b strings.Builder
	b.Grow(len(head) + 1 + len(tail))
	b.WriteString(head)
	b.WriteByte(sep)
	b.WriteString(tail)

	return b.String()
}

func isSeparatorRune(r rune) bool {
	return r == Separator || r == AltSeparator
}
