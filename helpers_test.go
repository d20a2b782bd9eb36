package proxyinfo

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// newTestConfig returns a config with a silent logger.
func newTestConfig() *Config {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := DefaultConfig()
	cfg.Logger = logger
	return cfg
}

// staticSource returns fixed settings, or err when set.
func staticSource(name string, s *Settings, err error) Source {
	return NewSource(name, func(context.Context) (*Settings, error) {
		return s, err
	})
}

// fakeCommands answers `settings` and `scutil` invocations from a table.
type fakeCommands struct {
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeCommands) run(_ context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	if err := f.errs[line]; err != nil {
		return nil, err
	}
	return []byte(f.outputs[line]), nil
}

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}
