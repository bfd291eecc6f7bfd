package winpath

const (
	// Separator is the default separator written by [Clean] and [Join].
	Separator = '\\'
	// AltSeparator is the other separator recognised on input.
	AltSeparator = '/'
)

// IsSeparator reports whether c is recognised as a path separator.
func IsSeparator(c byte) bool {
	return c == Separator || c == AltSeparator
}

// Paths is a configured set of path operations.
// A Paths is immutable and safe for concurrent use.
type Paths struct {
	limits    Limits
	separator byte
}

// Option configures a [Paths].
type Option func(*Paths)

// WithLimits sets the buffer capacities.
func WithLimits(l Limits) Option {
	return func(p *Paths) {
		p.limits = l
	}
}

// WithSeparator sets the separator written by [Paths.Clean] and [Paths.Join].
func WithSeparator(sep byte) Option {
	return func(p *Paths) {
		p.separator = sep
	}
}

// New creates a [Paths] with [DefaultLimits] and [Separator], modified by opts.
func New(opts ...Option) *Paths {
	p := &Paths{
		limits:    DefaultLimits(),
		separator: Separator,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Limits returns the buffer capacities of p.
func (p *Paths) Limits() Limits {
	return p.limits
}

// Separator returns the separator written by p.
func (p *Paths) Separator() byte {
	return p.separator
}

var std = New()

// Clean calls [Paths.Clean] with the default configuration.
func Clean(path string) string { return std.Clean(path) }

// CleanSep calls [Paths.CleanSep] with the default configuration.
func CleanSep(path string, sep byte) string { return std.CleanSep(path, sep) }

// Join calls [Paths.Join] with the default configuration.
func Join(lhs, rhs string) string { return std.Join(lhs, rhs) }

// GetDrive calls [Paths.GetDrive] with the default configuration.
func GetDrive(path string) (string, bool) { return std.GetDrive(path) }

// GetDirectory calls [Paths.GetDirectory] with the default configuration.
func GetDirectory(path string) (string, bool) { return std.GetDirectory(path) }

// GetBaseName calls [Paths.GetBaseName] with the default configuration.
func GetBaseName(path string) string { return std.GetBaseName(path) }

// GetName calls [Paths.GetName] with the default configuration.
//
// Deprecated: use [GetBaseName].
func GetName(path string) string { return std.GetName(path) }

// GetStem calls [Paths.GetStem] with the default configuration.
func GetStem(path string) string { return std.GetStem(path) }

// GetExtension calls [Paths.GetExtension] with the default configuration.
func GetExtension(path string) string { return std.GetExtension(path) }

// Split calls [Paths.Split] with the default configuration.
func Split(path string) Components { return std.Split(path) }
