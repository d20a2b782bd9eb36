package proxyinfo

import (
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// DiagnosticConfig returns a configuration that keeps raw settings on every
// result and logs them at debug level. Use it behind a debug screen or when
// a user reports a proxy that the default lookup does not see.
func DiagnosticConfig() *Config {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	return &Config{
		CommandTimeout:     10 * time.Second,
		IncludeDiagnostics: true,
		Logger:             logger,
	}
}

// DefaultSources returns the lookup order used when Config.Sources is empty:
// proxy environment variables first, then the platform settings store.
func DefaultSources() []string {
	return defaultSources(runtime.GOOS)
}

func defaultSources(goos string) []string {
	switch goos {
	case "android":
		return []string{SourceAndroid}
	case "darwin":
		return []string{SourceEnvironment, SourceScutil}
	case "windows":
		return []string{SourceEnvironment, SourceRegistry}
	default:
		return []string{SourceEnvironment}
	}
}
