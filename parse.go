package proxyinfo

import (
	"github.com/cybergodev/proxyinfo/internal/parser"
)

// ParseHostPortString parses a raw "host:port" setting. It reports false,
// never an error, when the value is empty, the cleared value ":0", has no
// colon, has an empty host, or has a port that is not a number in 1..65535.
// Anything after a second colon is ignored.
func ParseHostPortString(raw string) (Endpoint, bool) {
	hp, ok := parser.ParseHostPort(raw)
	if !ok {
		return Endpoint{}, false
	}
	return Endpoint{Host: hp.Host, Port: hp.Port}, true
}

// ParseHostPortPair validates a host and port stored as separate fields.
// A nil enabled means the store has no enable flag; a non-nil false always
// yields no endpoint, however valid host and port are.
func ParseHostPortPair(enabled *bool, host *string, port *int) (Endpoint, bool) {
	hp, ok := parser.ParsePair(enabled, host, port)
	if !ok {
		return Endpoint{}, false
	}
	return Endpoint{Host: hp.Host, Port: hp.Port}, true
}
