package proxy

import (
	"context"
	"errors"
	"fmt"

	"github.com/cybergodev/proxyinfo/internal/dict"
)

// ReadScutil returns the SystemConfiguration proxy dictionary as printed by
// `scutil --proxy`.
func ReadScutil(ctx context.Context, run Runner) (dict.Dictionary, error) {
	out, err := run(ctx, "scutil", "--proxy")
	if err != nil {
		return nil, fmt.Errorf("read system proxy dictionary: %w", err)
	}

	d := dict.ParseScutil(string(out))
	if d == nil {
		return nil, errors.New("read system proxy dictionary: no dictionary in scutil output")
	}
	return d, nil
}
