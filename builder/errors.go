// SPDX-License-Identifier: MIT
// Package: genremap/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` via builderErrorf.
//   • Option constructors panic on meaningless inputs; ingestion never panics.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord indicates a record failed validation. Under PolicyAbort it
// is returned wrapped with the record index; under PolicySkip it is only
// logged and counted.
var ErrInvalidRecord = errors.New("builder: invalid record")

// ErrEmptyLabel indicates a label that is empty after normalisation.
var ErrEmptyLabel = errors.New("builder: empty label")

// ErrNilChannel indicates IngestStream was given a nil channel.
var ErrNilChannel = errors.New("builder: nil record channel")

// builderErrorf wraps err with the given method context and a formatted
// message, preserving err for errors.Is. The result reads
// "<method>: <message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
