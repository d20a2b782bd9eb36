// Package proxy reads raw proxy settings from the platform settings stores.
// Readers return the values exactly as stored; validation is left to the
// parser package so every store is judged by the same rule.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Scheme names used for entries and dictionary key prefixes.
const (
	SchemeHTTP  = "HTTP"
	SchemeHTTPS = "HTTPS"
	SchemeSOCKS = "SOCKS"
)

// ErrUnsupported is returned by readers whose settings store does not exist
// on the running platform.
var ErrUnsupported = errors.New("settings store not supported on this platform")

// Entry is one raw "host:port" setting together with the key it was read
// from and the proxy scheme it configures.
type Entry struct {
	Key    string
	Value  string
	Scheme string
}

// Runner executes a command and returns its output. Tests replace it to
// avoid touching the host's settings.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return nil, fmt.Errorf("%s: %w: %s", name, err, msg)
	}
	return out, nil
}
