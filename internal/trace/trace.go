// Package trace attaches call-site context to panics the way
// TheBitDrifter/bark does at warehouse's own panic sites (entity.go's
// entry() wraps a lookup failure with bark.AddTrace before panicking).
// bark itself is an external sibling module with no fetchable source in
// this pack, so this is an in-repo equivalent rather than an import.
package trace

import (
	"fmt"
	"runtime"
)

// Add wraps err with the file:line of its caller, the way bark.AddTrace
// annotates an error before a panic so the message surviving to the
// terminal still names where the invariant broke.
func Add(err error) error {
	if err == nil {
		return nil
	}
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return err
	}
	return fmt.Errorf("%s:%d: %w", file, line, err)
}

// Addf is Add for a freshly formatted error.
func Addf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return err
	}
	return fmt.Errorf("%s:%d: %w", file, line, err)
}
