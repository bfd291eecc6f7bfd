package winpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	// DefaultPathLimit is the capacity of a full path buffer.
	DefaultPathLimit = 288
	// DefaultDriveLimit is the capacity of a drive buffer.
	DefaultDriveLimit = 8
	// DefaultExtensionLimit is the capacity of an extension buffer.
	DefaultExtensionLimit = 32
	// DefaultNameLimit is the capacity of a bare name buffer.
	DefaultNameLimit = DefaultPathLimit

	// driveLen is the length of a `<letter>:` prefix.
	driveLen = 2
)

// ErrInvalidLimits indicates a [Limits] value that cannot hold its role.
var ErrInvalidLimits = errors.New("invalid limits")

// Limits holds the capacity, in bytes, of each buffer role.
type Limits struct {
	// Path bounds full path inputs and outputs.
	Path int `json:"path" jsonschema:"minimum=1" koanf:"path" yaml:"path"`
	// Drive bounds drive outputs.
	Drive int `json:"drive" jsonschema:"minimum=2" koanf:"drive" yaml:"drive"`
	// Extension bounds extension outputs.
	Extension int `json:"extension" jsonschema:"minimum=1" koanf:"extension" yaml:"extension"`
	// Name bounds bare name and stem outputs.
	Name int `json:"name" jsonschema:"minimum=1" koanf:"name" yaml:"name"`
}

// DefaultLimits returns the default [Limits].
func DefaultLimits() Limits {
	return Limits{
		Path:      DefaultPathLimit,
		Drive:     DefaultDriveLimit,
		Extension: DefaultExtensionLimit,
		Name:      DefaultNameLimit,
	}
}

// Validate reports every field that cannot hold its role.
func (l Limits) Validate() error {
	var merr error

	for _, f := range []struct {
		name  string
		v     int
		least int
	}{
		{"path", l.Path, 1},
		{"drive", l.Drive, driveLen},
		{"extension", l.Extension, 1},
		{"name", l.Name, 1},
	} {
		if f.v < f.least {
			merr = multierror.Append(merr, fmt.Errorf("%s must be at least %d, got %d", f.name, f.least, f.v))
		}
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLimits, merr)
	}

	return nil
}

// terminate cuts s at its first NUL byte.
func terminate(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}

	return s
}

// bound terminates s and cuts it to n bytes.
func bound(s string, n int) string {
	s = terminate(s)
	if len(s) > n {
		return s[:n]
	}

	return s
}
