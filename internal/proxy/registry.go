package proxy

import (
	"strings"
)

// internetSettingsPath is the per-user WinINet configuration key.
const internetSettingsPath = `Software\Microsoft\Windows\CurrentVersion\Internet Settings`

// ReadRegistry reads the WinINet proxy settings. A disabled or empty proxy
// yields no entries.
func ReadRegistry() ([]Entry, error) {
	enabled, server, err := readInternetSettings()
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, nil
	}
	return SplitProxyServer(server), nil
}

// SplitProxyServer splits a WinINet ProxyServer value.
// Format can be:
// - "server:port" (single proxy for all protocols)
// - "http=server:port;https=server:port;socks=server:port" (per-protocol)
//
// A "scheme://" prefix on a server is dropped. Protocols other than http,
// https and socks are ignored.
func SplitProxyServer(server string) []Entry {
	server = strings.TrimSpace(server)
	if server == "" {
		return nil
	}

	if !strings.Contains(server, "=") {
		return []Entry{{Key: "ProxyServer", Value: stripScheme(server), Scheme: SchemeHTTP}}
	}

	var entries []Entry
	for _, part := range strings.Split(server, ";") {
		protocol, addr, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		protocol = strings.ToLower(strings.TrimSpace(protocol))

		var scheme string
		switch protocol {
		case "http":
			scheme = SchemeHTTP
		case "https":
			scheme = SchemeHTTPS
		case "socks":
			scheme = SchemeSOCKS
		default:
			continue
		}

		entries = append(entries, Entry{
			Key:    "ProxyServer[" + protocol + "]",
			Value:  stripScheme(strings.TrimSpace(addr)),
			Scheme: scheme,
		})
	}
	return entries
}

func stripScheme(addr string) string {
	if _, rest, ok := strings.Cut(addr, "://"); ok {
		return strings.TrimSuffix(rest, "/")
	}
	return addr
}
