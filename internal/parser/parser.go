// Package parser reduces raw proxy settings to a validated host and port.
// Every platform reader in proxyinfo funnels its values through this package
// so that a single rule decides what counts as a configured proxy.
package parser

import (
	"strconv"
	"strings"
)

const (
	// MaxPort is the largest valid TCP port.
	MaxPort = 65535

	// unsetValue is what Android stores in http_proxy after a proxy is cleared.
	unsetValue = ":0"
)

// HostPort is a validated proxy address. Host is never empty and Port is
// always within 1..MaxPort.
type HostPort struct {
	Host string
	Port int
}

// String formats the address as "host:port".
func (hp HostPort) String() string {
	return hp.Host + ":" + strconv.Itoa(hp.Port)
}

// ParseHostPort parses a "host:port" setting. It reports false for empty,
// cleared, or malformed values; it never returns an error. Segments after
// the second colon are ignored, so IPv6 literals are not supported.
func ParseHostPort(raw string) (HostPort, bool) {
	if raw == "" || raw == unsetValue {
		return HostPort{}, false
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return HostPort{}, false
	}

	return validate(parts[0], portValue(parts[1]))
}

// ParsePair validates a host and port that the settings store already keeps
// as separate fields. A nil enabled means the store has no enable flag.
func ParsePair(enabled *bool, host *string, port *int) (HostPort, bool) {
	if enabled != nil && !*enabled {
		return HostPort{}, false
	}
	if host == nil || port == nil {
		return HostPort{}, false
	}
	return validate(*host, *port)
}

// portValue parses decimal port text, mapping anything unparsable to 0.
func portValue(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func validate(host string, port int) (HostPort, bool) {
	if host == "" || port <= 0 || port > MaxPort {
		return HostPort{}, false
	}
	return HostPort{Host: host, Port: port}, true
}
