package proxyinfo

import (
	"net/url"

	"github.com/cybergodev/proxyinfo/internal/netutil"
	"github.com/cybergodev/proxyinfo/internal/parser"
	"github.com/cybergodev/proxyinfo/internal/proxy"
)

// Scheme identifies which kind of proxy a setting configures.
type Scheme string

const (
	SchemeHTTP  Scheme = proxy.SchemeHTTP
	SchemeHTTPS Scheme = proxy.SchemeHTTPS
	SchemeSOCKS Scheme = proxy.SchemeSOCKS
)

// Endpoint is a validated proxy address: Host is never empty and Port is
// within 1..65535. Endpoints are only produced by a successful parse.
type Endpoint struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
}

// String formats the endpoint as "host:port".
func (e Endpoint) String() string {
	return parser.HostPort{Host: e.Host, Port: e.Port}.String()
}

// URL returns the endpoint as a proxy URL with the given scheme
// ("http", "socks5", ...).
func (e Endpoint) URL(scheme string) *url.URL {
	return &url.URL{Scheme: scheme, Host: e.String()}
}

// IsLoopback reports whether the proxy runs on the device itself.
func (e Endpoint) IsLoopback() bool {
	return netutil.IsLocalhost(e.Host)
}

// IsPrivate reports whether the proxy host is a private or reserved
// address. Hostnames other than localhost are not resolved.
func (e Endpoint) IsPrivate() bool {
	return netutil.IsPrivateHost(e.Host)
}

// Map returns the two-field wire record {"host": string, "port": int}.
func (e Endpoint) Map() map[string]any {
	return map[string]any{
		"host": e.Host,
		"port": e.Port,
	}
}

// Status is the outcome of a lookup.
type Status int

const (
	// StatusNotConfigured means the settings were read and no valid proxy
	// is set. Malformed settings also land here.
	StatusNotConfigured Status = iota
	// StatusFound means Result.Endpoint holds the configured proxy.
	StatusFound
	// StatusLookupFailed means a settings store could not be read.
	StatusLookupFailed
)

func (s Status) String() string {
	switch s {
	case StatusNotConfigured:
		return "not_configured"
	case StatusFound:
		return "found"
	case StatusLookupFailed:
		return "lookup_failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of Detector.Lookup.
type Result struct {
	Status Status

	// Endpoint is the primary proxy, set only when Status is StatusFound.
	// HTTP takes precedence over HTTPS.
	Endpoint *Endpoint
	Scheme   Scheme

	// HTTPS is the HTTPS proxy when an HTTP proxy was chosen as primary.
	HTTPS *Endpoint
	// SOCKS is the SOCKS proxy, if the store configures one. It is never primary.
	SOCKS *Endpoint

	// Source names the settings source that produced the result.
	Source string
	// Message is a short human-readable note for NotConfigured and
	// LookupFailed results.
	Message string

	// Diagnostics holds the raw settings. It is only populated when
	// Config.IncludeDiagnostics is set and is never needed to use the result.
	Diagnostics *Diagnostics
}

// Found reports whether a proxy is configured.
func (r *Result) Found() bool {
	return r != nil && r.Status == StatusFound && r.Endpoint != nil
}

// Diagnostics is the raw material a result was derived from.
type Diagnostics struct {
	Source          string
	Entries         []Entry
	Dictionary      map[string]any
	DictionaryCount int
}

// Entry is one raw "host:port" setting as stored by the platform.
type Entry struct {
	Key    string `json:"key" yaml:"key"`
	Value  string `json:"value" yaml:"value"`
	Scheme Scheme `json:"scheme,omitempty" yaml:"scheme,omitempty"`
}

// Settings is what a Source read from its store. Entries are consulted in
// order; Dictionary uses the platform key names HTTPEnable, HTTPProxy,
// HTTPPort, HTTPSEnable, HTTPSProxy, HTTPSPort, SOCKSEnable, SOCKSProxy and
// SOCKSPort. A nil or empty Settings means nothing is configured.
type Settings struct {
	Entries    []Entry        `json:"entries,omitempty" yaml:"entries,omitempty"`
	Dictionary map[string]any `json:"dictionary,omitempty" yaml:"dictionary,omitempty"`
}
