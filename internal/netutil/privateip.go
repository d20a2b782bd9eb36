// Package netutil classifies proxy hosts. It answers whether a configured
// proxy points back at the device itself or into a private network, which
// callers use to flag local debugging proxies (Charles, mitmproxy, ...).
package netutil

import (
	"net"
	"strings"
)

// IsPrivateOrReservedIP checks if an IP address is private, reserved, or
// otherwise not suitable for public internet communication.
func IsPrivateOrReservedIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsMulticast() || ip.IsUnspecified() {
		return true
	}

	if ip4 := ip.To4(); ip4 != nil {
		// Check for reserved IP ranges
		if ip4[0] >= 240 || // Class E (240.0.0.0/4) - Reserved
			ip4[0] == 0 || // "This" Network (0.0.0.0/8)
			(ip4[0] == 100 && (ip4[1]&0xC0) == 64) || // Carrier-grade NAT (100.64.0.0/10)
			(ip4[0] == 198 && (ip4[1] == 18 || ip4[1] == 19)) { // Benchmarking (198.18.0.0/15)
			return true
		}
	}

	return false
}

// IsPrivateHost reports whether host is an IP literal in a private or
// reserved range. Hostnames are never resolved and report false, except
// for localhost names.
func IsPrivateHost(host string) bool {
	if IsLocalhost(host) {
		return true
	}
	ip := net.ParseIP(strings.Trim(host, "[]"))
	return ip != nil && IsPrivateOrReservedIP(ip)
}

// IsLocalhost detects localhost variations including:
// - "localhost" and "localhost." subdomains
// - 127.x.x.x
// - ::1
// - 0.0.0.0 and ::
func IsLocalhost(hostname string) bool {
	hostname = strings.Trim(hostname, "[]")
	switch hostname {
	case "0.0.0.0", "::":
		return true
	}

	if ip := net.ParseIP(hostname); ip != nil {
		return ip.IsLoopback()
	}

	lower := strings.ToLower(strings.TrimSuffix(hostname, "."))
	return lower == "localhost" || strings.HasSuffix(lower, ".localhost")
}
