package winpath

import "strings"

// Clean cleans path with the separator of p. See [Paths.CleanSep].
func (p *Paths) Clean(path string) string {
	return p.CleanSep(path, p.separator)
}

// CleanSep rewrites every separator in path as sep and collapses each run of
// separators into one. It does not resolve `.` or `..` and keeps a trailing
// separator. The result is never longer than path cut to the path capacity.
// A NUL sep terminates paths, so the separator of p is written instead.
func (p *Paths) CleanSep(path string, sep byte) string {
	if sep == 0 {
		sep = p.separator
	}

	path = bound(path, p.limits.Path)
	if !needsClean(path, sep) {
		return path
	}

	var b strings.Builder
	b.Grow(len(path))

	prevSep := false
	for i := range len(path) {
		c := path[i]
		if !IsSeparator(c) {
			b.WriteByte(c)
			prevSep = false

			continue
		}

		if !prevSep {
			b.WriteByte(sep)
		}

		prevSep = true
	}

	return b.String()
}

// needsClean reports whether path holds a foreign or repeated separator.
func needsClean(path string, sep byte) bool {
	for i := range len(path) {
		if !IsSeparator(path[i]) {
			continue
		}

		if path[i] != sep || (i > 0 && IsSeparator(path[i-1])) {
			return true
		}
	}

	return false
}
