package pathops

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArgument indicates a required argument was not supplied.
	ErrMissingArgument = errors.New("missing argument")

	// ErrUnknownMethod indicates a method name that is not registered.
	ErrUnknownMethod = errors.New("unknown method")
)

// Args holds positional string arguments. An absent argument is nil.
type Args struct {
	values []*string
}

// NewArgs returns [Args] holding every value as present.
func NewArgs(values ...string) Args {
	args := Args{values: make([]*string, len(values))}
	for i := range values {
		args.values[i] = &values[i]
	}

	return args
}

// NewArgsWithAbsent returns [Args] from values, where nil marks an absent
// argument.
func NewArgsWithAbsent(values ...*string) Args {
	return Args{values: values}
}

// Len returns the number of argument slots, present or not.
func (a Args) Len() int {
	return len(a.values)
}

// Has reports whether argument i is present.
func (a Args) Has(i int) bool {
	return i >= 0 && i < len(a.values) && a.values[i] != nil
}

// Str returns argument i, or [ErrMissingArgument] when it is absent.
func (a Args) Str(i int) (string, error) {
	if !a.Has(i) {
		return "", fmt.Errorf("%w: position %d", ErrMissingArgument, i)
	}

	return *a.values[i], nil
}

// OptStr returns argument i, or defaultValue when it is absent.
func (a Args) OptStr(i int, defaultValue string) string {
	if !a.Has(i) {
		return defaultValue
	}

	return *a.values[i]
}

// Result is the outcome of a method call.
type Result struct {
	Value string `json:"value" yaml:"value"`
	// Found is false when the method produced nothing, as opposed to an
	// empty value.
	Found bool `json:"found" yaml:"found"`
}

// Value returns a found [Result].
func Value(v string) Result {
	return Result{Value: v, Found: true}
}

// Optional returns a [Result] from a comma-ok pair.
func Optional(v string, ok bool) Result {
	if !ok {
		return Result{}
	}

	return Value(v)
}
