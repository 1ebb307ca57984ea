// Package errs wraps cockroachdb/errors so callers get stack traces and
// sentinel marking without importing the library everywhere.
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

// Mark attaches markErr as a sentinel recognized by the standard library's
// errors.Is. The message and cause chain stay those of err. A nil err returns
// the sentinel itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: cr.Mark(err, markErr), mark: markErr}
}

// marked makes the sentinel visible to errors.Is. cockroachdb's Mark records
// the sentinel as a marker that only its own Is walks, so the stdlib would
// never match it through Unwrap alone.
type marked struct {
	cause error
	mark  error
}

func (m *marked) Error() string { return m.cause.Error() }

func (m *marked) Unwrap() error { return m.cause }

func (m *marked) Is(target error) bool { return target == m.mark }

func (m *marked) Format(s fmt.State, verb rune) {
	if f, ok := m.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprintf(s, "%v", m.cause)
}

// ExtractStackLines formats err with its stack trace and returns at most
// maxLines lines, for structured log fields.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
