package proxyinfo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cybergodev/proxyinfo/internal/dict"
	"github.com/cybergodev/proxyinfo/internal/proxy"
)

// Detector looks up the system proxy by consulting its sources in order.
// It holds no state between lookups and is safe for concurrent use.
type Detector struct {
	sources     []Source
	diagnostics bool
	log         logrus.FieldLogger
}

// New creates a Detector over the built-in sources named in the
// configuration, or DefaultConfig() when none is given.
func New(config ...*Config) (*Detector, error) {
	var cfg *Config
	if len(config) > 0 && config[0] != nil {
		if err := ValidateConfig(config[0]); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = deepCopyConfig(config[0])
	} else {
		cfg = DefaultConfig()
	}
	return newDetector(cfg, proxy.ExecRunner, os.Getenv)
}

// NewWithSources creates a Detector over caller-supplied sources, such as a
// DictionarySource fed by the host application. Config.Sources is ignored;
// the other settings still apply. A nil config uses DefaultConfig().
func NewWithSources(cfg *Config, sources ...Source) (*Detector, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	} else if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: at least one source is required", ErrInvalidConfig)
	}
	for i, s := range sources {
		if s == nil {
			return nil, fmt.Errorf("%w: source %d is nil", ErrInvalidConfig, i)
		}
	}

	return &Detector{
		sources:     append([]Source(nil), sources...),
		diagnostics: cfg.IncludeDiagnostics,
		log:         loggerFor(cfg),
	}, nil
}

func newDetector(cfg *Config, run proxy.Runner, getenv func(string) string) (*Detector, error) {
	names := cfg.Sources
	if len(names) == 0 {
		names = DefaultSources()
	}

	sources := make([]Source, 0, len(names))
	for _, name := range names {
		s, err := newBuiltinSource(name, cfg, run, getenv)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}

	return &Detector{
		sources:     sources,
		diagnostics: cfg.IncludeDiagnostics,
		log:         loggerFor(cfg),
	}, nil
}

func loggerFor(cfg *Config) logrus.FieldLogger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return logrus.StandardLogger()
}

// Sources returns the source names in lookup order.
func (d *Detector) Sources() []string {
	names := make([]string, len(d.sources))
	for i, s := range d.sources {
		names[i] = s.Name()
	}
	return names
}

// Lookup reads the sources in order and returns the first configured proxy.
// A source with nothing configured passes to the next one; a source that
// cannot be read stops the lookup.
//
// The returned Result is never nil. The error is non-nil exactly when
// Result.Status is StatusLookupFailed, and then wraps ErrLookupFailed.
func (d *Detector) Lookup(ctx context.Context) (*Result, error) {
	return d.lookup(ctx, d.diagnostics)
}

func (d *Detector) lookup(ctx context.Context, withDiagnostics bool) (*Result, error) {
	var last, socksOnly *Result

	for _, src := range d.sources {
		name := src.Name()
		log := d.log.WithField("source", name)

		if err := ctx.Err(); err != nil {
			return d.failed(name, err, log)
		}

		settings, err := src.Read(ctx)
		if err != nil {
			return d.failed(name, err, log)
		}
		logSettings(log, settings)

		res := resolve(name, settings, withDiagnostics)
		if res.Found() {
			log.WithFields(logrus.Fields{
				"scheme": res.Scheme,
				"host":   res.Endpoint.Host,
				"port":   res.Endpoint.Port,
			}).Debug("proxy found")
			return res, nil
		}
		if res.SOCKS != nil && socksOnly == nil {
			socksOnly = res
		}
		last = res
	}

	if socksOnly != nil {
		return socksOnly, nil
	}
	if last == nil {
		last = &Result{Status: StatusNotConfigured, Message: msgNotConfigured}
	}
	return last, nil
}

func (d *Detector) failed(source string, cause error, log logrus.FieldLogger) (*Result, error) {
	err := &LookupError{Source: source, Err: cause}
	log.WithError(cause).Warn("proxy settings lookup failed")
	return &Result{
		Status:  StatusLookupFailed,
		Source:  source,
		Message: err.Error(),
	}, err
}

func logSettings(log logrus.FieldLogger, s *Settings) {
	if s == nil {
		log.Debug("no proxy settings")
		return
	}
	for _, e := range s.Entries {
		log.WithFields(logrus.Fields{
			"key":    e.Key,
			"value":  e.Value,
			"scheme": e.Scheme,
		}).Debug("raw proxy setting")
	}
	if s.Dictionary != nil {
		d := dict.Dictionary(s.Dictionary)
		log.WithField("count", len(d)).Debug("raw proxy dictionary")
		for _, k := range d.Keys() {
			log.WithFields(logrus.Fields{
				"key":   k,
				"value": d[k],
			}).Debug("raw proxy dictionary entry")
		}
	}
}

// ProxyFunc returns a proxy function for http.Transport built from a single
// lookup. It returns nil if no proxy is configured or the lookup fails,
// which means direct connection. HTTPS requests use the secondary HTTPS
// proxy when one exists. An HTTPS-only proxy is not used for plain http
// requests.
func (d *Detector) ProxyFunc(ctx context.Context) func(*http.Request) (*url.URL, error) {
	res, err := d.Lookup(ctx)
	if err != nil || !res.Found() {
		return nil
	}

	var httpURL, httpsURL *url.URL
	switch res.Scheme {
	case SchemeHTTPS:
		httpsURL = res.Endpoint.URL("http")
	default:
		httpURL = res.Endpoint.URL("http")
		httpsURL = httpURL
		if res.HTTPS != nil {
			httpsURL = res.HTTPS.URL("http")
		}
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL != nil && req.URL.Scheme == "https" {
			return httpsURL, nil
		}
		return httpURL, nil
	}
}
