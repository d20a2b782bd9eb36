package proxyinfo

import (
	"strings"

	"github.com/cybergodev/proxyinfo/internal/dict"
)

const msgNotConfigured = "No proxy configuration found"

var dictionarySchemes = []Scheme{SchemeHTTP, SchemeHTTPS, SchemeSOCKS}

// resolve applies the shared extraction rule to one source's settings.
// Entries win over dictionary keys for the same scheme; for each scheme the
// first valid value wins. HTTP is primary, then HTTPS.
func resolve(source string, s *Settings, withDiagnostics bool) *Result {
	res := &Result{Status: StatusNotConfigured, Source: source}
	if withDiagnostics {
		res.Diagnostics = diagnose(source, s)
	}
	if s == nil {
		res.Message = msgNotConfigured
		return res
	}

	found := make(map[Scheme]*Endpoint, len(dictionarySchemes))

	for _, e := range s.Entries {
		scheme := Scheme(strings.ToUpper(string(e.Scheme)))
		if scheme == "" {
			scheme = SchemeHTTP
		}
		if found[scheme] != nil {
			continue
		}
		if ep, ok := ParseHostPortString(e.Value); ok {
			found[scheme] = &ep
		}
	}

	if s.Dictionary != nil {
		d := dict.Dictionary(s.Dictionary)
		for _, scheme := range dictionarySchemes {
			if found[scheme] != nil {
				continue
			}
			if ep, ok := pairFromDictionary(d, scheme); ok {
				found[scheme] = &ep
			}
		}
	}

	res.SOCKS = found[SchemeSOCKS]
	switch {
	case found[SchemeHTTP] != nil:
		res.Status = StatusFound
		res.Endpoint = found[SchemeHTTP]
		res.Scheme = SchemeHTTP
		res.HTTPS = found[SchemeHTTPS]
	case found[SchemeHTTPS] != nil:
		res.Status = StatusFound
		res.Endpoint = found[SchemeHTTPS]
		res.Scheme = SchemeHTTPS
	default:
		res.Message = msgNotConfigured
	}
	return res
}

// pairFromDictionary reads <Scheme>Enable, <Scheme>Proxy and <Scheme>Port.
func pairFromDictionary(d dict.Dictionary, scheme Scheme) (Endpoint, bool) {
	prefix := string(scheme)

	var enabled *bool
	if v, present := d.Bool(prefix + "Enable"); present {
		enabled = &v
	}

	var host *string
	if v, ok := d.String(prefix + "Proxy"); ok {
		host = &v
	}

	var port *int
	if v, ok := d.Int(prefix + "Port"); ok {
		port = &v
	}

	return ParseHostPortPair(enabled, host, port)
}

func diagnose(source string, s *Settings) *Diagnostics {
	diag := &Diagnostics{Source: source}
	if s == nil {
		return diag
	}
	if len(s.Entries) > 0 {
		diag.Entries = append([]Entry(nil), s.Entries...)
	}
	if s.Dictionary != nil {
		diag.Dictionary = dict.Dictionary(s.Dictionary).Clone()
		diag.DictionaryCount = len(s.Dictionary)
	}
	return diag
}
