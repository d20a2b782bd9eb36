package proxyinfo

import (
	"errors"
	"fmt"

	"github.com/cybergodev/proxyinfo/internal/proxy"
)

var (
	// ErrNilConfig is returned when a nil configuration is provided.
	// Always provide a valid Config or use DefaultConfig().
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownSource is returned when Config.Sources names a source that
	// does not exist.
	ErrUnknownSource = errors.New("unknown settings source")

	// ErrUnsupportedPlatform is returned by a source whose settings store
	// does not exist on the running platform, such as the registry source
	// outside Windows.
	ErrUnsupportedPlatform = proxy.ErrUnsupported

	// ErrLookupFailed is returned when a settings store could not be read at
	// all. It is distinct from "no proxy configured", which is not an error.
	ErrLookupFailed = errors.New("proxy lookup failed")

	// ErrNotImplemented is returned by Handler for unregistered methods.
	ErrNotImplemented = errors.New("method not implemented")
)

// LookupError reports a failed settings read. It matches both
// ErrLookupFailed and the underlying cause with errors.Is.
type LookupError struct {
	Source string
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: source %s: %v", ErrLookupFailed, e.Source, e.Err)
}

func (e *LookupError) Unwrap() []error {
	return []error{ErrLookupFailed, e.Err}
}

// MethodError is the labeled error a Handler returns across the method-call
// boundary. Code and Message are stable; Details carries the cause.
type MethodError struct {
	Code    string
	Message string
	Details string

	err error
}

func (e *MethodError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.Details)
}

func (e *MethodError) Unwrap() error {
	return e.err
}
