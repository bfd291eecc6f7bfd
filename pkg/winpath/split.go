package winpath

import "strings"

// Components holds every part of a path, as located by [Paths.Split].
type Components struct {
	Drive        string `json:"drive"        yaml:"drive"`
	Directory    string `json:"directory"    yaml:"directory"`
	BaseName     string `json:"baseName"     yaml:"baseName"`
	Stem         string `json:"stem"         yaml:"stem"`
	Extension    string `json:"extension"    yaml:"extension"`
	HasDrive     bool   `json:"hasDrive"     yaml:"hasDrive"`
	HasDirectory bool   `json:"hasDirectory" yaml:"hasDirectory"`
}

// Split locates every component of path. Path is cut to the path capacity
// first, so all components come from the same text.
func (p *Paths) Split(path string) Components {
	path = bound(path, p.limits.Path)

	c := Components{
		BaseName:  p.GetBaseName(path),
		Stem:      p.GetStem(path),
		Extension: p.GetExtension(path),
	}
	c.Drive, c.HasDrive = p.GetDrive(path)
	c.Directory, c.HasDirectory = p.GetDirectory(path)

	return c
}

// GetDrive returns the `<letter>:` prefix of path.
// It reports false when path has no such prefix. The letter is not checked
// against the drives that exist.
func (p *Paths) GetDrive(path string) (string, bool) {
	path = bound(path, p.limits.Path)

	n := driveEnd(path)
	if n == 0 {
		return "", false
	}

	return bound(path[:n], p.limits.Drive), true
}

// GetDirectory returns path with its last component removed.
//
// The last run of separators marks the boundary and is dropped, except when
// that run is the root directly after the drive (or at the start of path), in
// which case it is kept: `C:\foo\bar` gives `C:\foo` and `C:\foo` gives `C:\`.
// GetDirectory reports false when path has no separator, or when path is
// nothing but a drive and a root. Runs before the boundary are left as they
// are.
func (p *Paths) GetDirectory(path string) (string, bool) {
	path = bound(path, p.limits.Path)

	last := lastSeparator(path)
	if last < 0 {
		return "", false
	}

	start := last
	for start > 0 && IsSeparator(path[start-1]) {
		start--
	}

	if start > driveEnd(path) {
		return path[:start], true
	}

	if last == len(path)-1 {
		return "", false
	}

	return path[:last+1], true
}

// GetBaseName returns the part of path after its last separator, or all of
// path when it has none. It is empty when path ends with a separator.
func (p *Paths) GetBaseName(path string) string {
	return bound(baseName(path), p.limits.Path)
}

// GetName returns the same component as [Paths.GetBaseName], bounded by the
// name capacity.
//
// Deprecated: use [Paths.GetBaseName].
func (p *Paths) GetName(path string) string {
	return bound(baseName(path), p.limits.Name)
}

// GetStem returns the base name of path without its extension.
func (p *Paths) GetStem(path string) string {
	name := baseName(path)

	return bound(name[:extensionIndex(name)], p.limits.Name)
}

// GetExtension returns the extension of the base name of path, including its
// leading dot. It is empty when the base name has no dot, when its only dot
// is the first byte (`.bashrc`), or when it is made only of dots (`..`).
func (p *Paths) GetExtension(path string) string {
	name := baseName(path)

	return bound(name[extensionIndex(name):], p.limits.Extension)
}

func baseName(path string) string {
	path = terminate(path)

	return path[lastSeparator(path)+1:]
}

func lastSeparator(path string) int {
	for i := len(path) - 1; i >= 0; i-- {
		if IsSeparator(path[i]) {
			return i
		}
	}

	return -1
}

// driveEnd returns the length of the drive prefix of path, or 0.
func driveEnd(path string) int {
	if len(path) >= driveLen && isASCIILetter(path[0]) && path[1] == ':' {
		return driveLen
	}

	return 0
}

// extensionIndex returns the offset of the extension within name, or
// len(name) when name has none.
func extensionIndex(name string) int {
	if strings.Trim(name, ".") == "" {
		return len(name)
	}

	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return len(name)
	}

	return i
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
