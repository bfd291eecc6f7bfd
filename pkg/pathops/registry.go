package pathops

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/macropower/winpath/pkg/winpath"
)

// Param describes one positional argument of a [Method].
type Param struct {
	Name     string
	Optional bool
}

// Method is a named path operation.
type Method struct {
	Body   func(args Args) (Result, error)
	Name   string
	Short  string
	Params []Param
}

// Compact returns the lower-case name of m without separators, e.g.
// "getbasename".
func (m Method) Compact() string {
	return strings.ToLower(m.Name)
}

// Names returns every name m answers to: the compact, snake-case, and
// kebab-case forms of its name.
func (m Method) Names() []string {
	names := []string{m.Compact()}
	for _, n := range []string{strcase.ToSnake(m.Name), strcase.ToKebab(m.Name)} {
		if !slices.Contains(names, n) {
			names = append(names, n)
		}
	}

	return names
}

// Registry holds the path methods bound to one [winpath.Paths].
type Registry struct {
	index   map[string]int
	methods []Method
}

// NewRegistry creates a [Registry] whose methods use paths.
func NewRegistry(paths *winpath.Paths) *Registry {
	r := &Registry{index: map[string]int{}}
	for _, m := range newMethods(paths) {
		r.add(m)
	}

	return r
}

func (r *Registry) add(m Method) {
	for _, n := range m.Names() {
		r.index[n] = len(r.methods)
	}

	r.methods = append(r.methods, m)
}

// Methods returns the registered methods in registration order.
func (r *Registry) Methods() []Method {
	return slices.Clone(r.methods)
}

// Lookup finds a method by any of its names, ignoring case.
func (r *Registry) Lookup(name string) (Method, error) {
	i, ok := r.index[strings.ToLower(name)]
	if !ok {
		return Method{}, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}

	return r.methods[i], nil
}

// Call invokes the named method with args.
func (r *Registry) Call(name string, args Args) (Result, error) {
	m, err := r.Lookup(name)
	if err != nil {
		return Result{}, err
	}

	logger := slog.With(slog.String("method", m.Compact()))
	logger.Debug("invoking path method", slog.Int("args", args.Len()))

	res, err := m.Body(args)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", m.Compact(), err)
	}

	logger.Debug("returning results", slog.Bool("found", res.Found))

	return res, nil
}

func newMethods(paths *winpath.Paths) []Method {
	pathParam := []Param{{Name: "path"}}

	return []Method{
		{
			Name:   "Clean",
			Short:  "Normalize separators and collapse separator runs",
			Params: []Param{{Name: "path"}, {Name: "separator", Optional: true}},
			Body: func(args Args) (Result, error) {
				path, err := args.Str(0)
				if err != nil {
					return Result{}, err
				}

				// Empty or NUL means the configured separator.
				sep := paths.Separator()
				if s := args.OptStr(1, ""); s != "" && s[0] != 0 {
					sep = s[0]
				}

				return Value(paths.CleanSep(path, sep)), nil
			},
		},
		{
			Name:   "GetBaseName",
			Short:  "Print the last component of a path",
			Params: pathParam,
			Body: func(args Args) (Result, error) {
				path, err := args.Str(0)
				if err != nil {
					return Result{}, err
				}

				return Value(paths.GetBaseName(path)), nil
			},
		},
		{
			Name:   "GetDirectory",
			Short:  "Print a path without its last component",
			Params: pathParam,
			Body: func(args Args) (Result, error) {
				path, err := args.Str(0)
				if err != nil {
					return Result{}, err
				}

				return Optional(paths.GetDirectory(path)), nil
			},
		},
		{
			Name:   "GetDrive",
			Short:  "Print the drive letter prefix of a path",
			Params: pathParam,
			Body: func(args Args) (Result, error) {
				path, err := args.Str(0)
				if err != nil {
					return Result{}, err
				}

				return Optional(paths.GetDrive(path)), nil
			},
		},
		{
			Name:   "GetExtension",
			Short:  "Print the extension of a path, including the dot",
			Params: pathParam,
			Body: func(args Args) (Result, error) {
				path, err := args.Str(0)
				if err != nil {
					return Result{}, err
				}

				return Value(paths.GetExtension(path)), nil
			},
		},
		{
			Name:   "GetName",
			Short:  "Print the last component of a path (same as getbasename)",
			Params: pathParam,
			Body: func(args Args) (Result, error) {
				path, err := args.Str(0)
				if err != nil {
					return Result{}, err
				}

				return Value(paths.GetName(path)), nil //nolint:staticcheck // Kept for callers of the old name.
			},
		},
		{
			Name:   "GetStem",
			Short:  "Print the last component of a path without its extension",
			Params: pathParam,
			Body: func(args Args) (Result, error) {
				path, err := args.Str(0)
				if err != nil {
					return Result{}, err
				}

				return Value(paths.GetStem(path)), nil
			},
		},
		{
			Name:   "Join",
			Short:  "Join two paths with exactly one separator",
			Params: []Param{{Name: "lhs"}, {Name: "rhs"}},
			Body: func(args Args) (Result, error) {
				lhs, err := args.Str(0)
				if err != nil {
					return Result{}, err
				}

				rhs, err := args.Str(1)
				if err != nil {
					return Result{}, err
				}

				return Value(paths.Join(lhs, rhs)), nil
			},
		},
	}
}
