// Package errs wraps cockroachdb/errors so the rest of the codebase gets
// stack traces and error marking without importing the library everywhere.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark attaches a sentinel to err so Is(err, markErr) holds while the
// original cause is preserved.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches ref. Marks attached via Mark are not on
// the stdlib Unwrap chain, so sentinel checks must go through here rather
// than the standard library's errors.Is.
func Is(err error, ref error) bool {
	return cr.Is(err, ref)
}

// ExtractStackLines renders the error with its stack trace, truncated for
// log output.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
