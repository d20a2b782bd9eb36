package proxyinfo

import (
	"fmt"

	"golang.org/x/net/proxy"
)

// Dialer returns a dialer that connects through the SOCKS proxy found by the
// lookup. Without a SOCKS endpoint it returns forward unchanged, or
// proxy.Direct when forward is nil. HTTP proxies are not dialers; use
// Detector.ProxyFunc with http.Transport for those.
func (r *Result) Dialer(forward proxy.Dialer) (proxy.Dialer, error) {
	if forward == nil {
		forward = proxy.Direct
	}
	if r == nil || r.SOCKS == nil {
		return forward, nil
	}

	d, err := proxy.SOCKS5("tcp", r.SOCKS.String(), nil, forward)
	if err != nil {
		return nil, fmt.Errorf("failed to create SOCKS5 dialer for %s: %w", r.SOCKS, err)
	}
	return d, nil
}
