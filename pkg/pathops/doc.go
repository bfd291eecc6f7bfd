// Package pathops exposes the [winpath] operations as a table of named
// methods, the shape used by command line and interpreter front ends.
//
// Methods take positional [Args], where a missing argument is distinct from
// an empty one, and return a [Result], where "no result" is distinct from an
// empty value.
package pathops
