package proxyinfo

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cybergodev/proxyinfo/internal/proxy"
)

// Source reads raw proxy settings from one settings store. Read returns an
// error only when the store itself cannot be read; an unset or malformed
// proxy is reported through the returned Settings.
type Source interface {
	Name() string
	Read(ctx context.Context) (*Settings, error)
}

type sourceFunc struct {
	name string
	read func(ctx context.Context) (*Settings, error)
}

func (s *sourceFunc) Name() string { return s.name }

func (s *sourceFunc) Read(ctx context.Context) (*Settings, error) { return s.read(ctx) }

// NewSource wraps a function as a Source.
func NewSource(name string, read func(ctx context.Context) (*Settings, error)) Source {
	return &sourceFunc{name: name, read: read}
}

// DictionarySource adapts a proxy dictionary supplied by the host
// application, such as URLSessionConfiguration.connectionProxyDictionary or
// CFNetworkCopySystemProxySettings on iOS. A nil dictionary means no proxy
// configuration exists.
func DictionarySource(name string, provide func(ctx context.Context) (map[string]any, error)) Source {
	return NewSource(name, func(ctx context.Context) (*Settings, error) {
		d, err := provide(ctx)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, nil
		}
		return &Settings{Dictionary: d}, nil
	})
}

// newBuiltinSource builds the named built-in source. run and getenv are
// injected so tests never touch the host's settings.
func newBuiltinSource(name string, cfg *Config, run proxy.Runner, getenv func(string) string) (Source, error) {
	switch name {
	case SourceAndroid:
		return NewSource(name, func(ctx context.Context) (*Settings, error) {
			ctx, cancel := withTimeout(ctx, cfg.CommandTimeout)
			defer cancel()
			entries, err := proxy.ReadAndroid(ctx, run)
			if err != nil {
				return nil, err
			}
			return &Settings{Entries: fromProxyEntries(entries)}, nil
		}), nil

	case SourceScutil:
		return NewSource(name, func(ctx context.Context) (*Settings, error) {
			ctx, cancel := withTimeout(ctx, cfg.CommandTimeout)
			defer cancel()
			d, err := proxy.ReadScutil(ctx, run)
			if err != nil {
				return nil, err
			}
			return &Settings{Dictionary: d}, nil
		}), nil

	case SourceRegistry:
		return NewSource(name, func(context.Context) (*Settings, error) {
			entries, err := proxy.ReadRegistry()
			if err != nil {
				return nil, err
			}
			return &Settings{Entries: fromProxyEntries(entries)}, nil
		}), nil

	case SourceEnvironment:
		return NewSource(name, func(context.Context) (*Settings, error) {
			return &Settings{Entries: fromProxyEntries(proxy.ReadEnvironment(getenv))}, nil
		}), nil

	case SourceEnvFile:
		path := cfg.EnvFile
		return NewSource(name, func(context.Context) (*Settings, error) {
			vars, err := godotenv.Read(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read env file: %w", err)
			}
			getvar := func(k string) string { return vars[k] }
			return &Settings{Entries: fromProxyEntries(proxy.ReadEnvironment(getvar))}, nil
		}), nil

	case SourceSnapshot:
		path := cfg.SnapshotFile
		return NewSource(name, func(context.Context) (*Settings, error) {
			return readSnapshot(path)
		}), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

// readSnapshot loads a YAML settings snapshot:
//
//	entries:
//	  - key: global/http_proxy
//	    value: 10.0.0.1:3128
//	dictionary:
//	  HTTPEnable: 1
//	  HTTPProxy: proxy.example.com
//	  HTTPPort: 8080
func readSnapshot(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}
	return &s, nil
}

func fromProxyEntries(in []proxy.Entry) []Entry {
	if len(in) == 0 {
		return nil
	}
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = Entry{Key: e.Key, Value: e.Value, Scheme: Scheme(e.Scheme)}
	}
	return out
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
