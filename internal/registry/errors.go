package registry

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when the registry document cannot be located:
// either no path could be derived (APPDATA unset) or the resolved path does
// not exist on disk.
type NotFoundError struct {
	Path   string
	Reason string
}

func (e *NotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("registry document not found: %s", e.Reason)
	}
	return fmt.Sprintf("registry document %s not found: %s", e.Path, e.Reason)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// ParseError is returned when the registry document exists but cannot be
// parsed as XML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing registry document %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError reports whether err is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
