package proxy

import (
	"context"
	"fmt"
	"strings"
)

// androidKeys lists the Android settings consulted, in precedence order.
// Settings.Secure.HTTP_PROXY is the pre-4.0 location kept as a fallback.
var androidKeys = []struct {
	namespace string
	key       string
}{
	{"global", "http_proxy"},
	{"secure", "http_proxy"},
}

// ReadAndroid reads the global and legacy secure http_proxy settings through
// the `settings` command. Unset keys yield empty values.
func ReadAndroid(ctx context.Context, run Runner) ([]Entry, error) {
	entries := make([]Entry, 0, len(androidKeys))
	for _, k := range androidKeys {
		out, err := run(ctx, "settings", "get", k.namespace, k.key)
		if err != nil {
			return nil, fmt.Errorf("read %s/%s: %w", k.namespace, k.key, err)
		}
		entries = append(entries, Entry{
			Key:    k.namespace + "/" + k.key,
			Value:  androidValue(string(out)),
			Scheme: SchemeHTTP,
		})
	}
	return entries, nil
}

// androidValue normalizes `settings get` output, which prints "null" for
// keys that were never written.
func androidValue(out string) string {
	v := strings.TrimSpace(out)
	if v == "null" {
		return ""
	}
	return v
}
