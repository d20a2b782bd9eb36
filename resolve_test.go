package proxyinfo

import (
	"testing"
)

func TestResolve_Entries(t *testing.T) {
	tests := []struct {
		name       string
		entries    []Entry
		wantStatus Status
		wantHost   string
		wantPort   int
	}{
		{
			name: "Global setting wins",
			entries: []Entry{
				{Key: "global/http_proxy", Value: "10.0.0.1:3128"},
				{Key: "secure/http_proxy", Value: "10.0.0.2:8080"},
			},
			wantStatus: StatusFound,
			wantHost:   "10.0.0.1",
			wantPort:   3128,
		},
		{
			name: "Legacy fallback after cleared global",
			entries: []Entry{
				{Key: "global/http_proxy", Value: ":0"},
				{Key: "secure/http_proxy", Value: "legacy.example.com:8080"},
			},
			wantStatus: StatusFound,
			wantHost:   "legacy.example.com",
			wantPort:   8080,
		},
		{
			name: "Malformed values collapse to not configured",
			entries: []Entry{
				{Key: "global/http_proxy", Value: "proxy.example.com"},
				{Key: "secure/http_proxy", Value: "proxy.example.com:abc"},
			},
			wantStatus: StatusNotConfigured,
		},
		{
			name:       "No entries",
			entries:    nil,
			wantStatus: StatusNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := resolve("android", &Settings{Entries: tt.entries}, false)
			if res.Status != tt.wantStatus {
				t.Fatalf("Status = %v, want %v", res.Status, tt.wantStatus)
			}
			if res.Source != "android" {
				t.Errorf("Source = %q", res.Source)
			}
			if tt.wantStatus != StatusFound {
				if res.Endpoint != nil {
					t.Errorf("Endpoint = %+v, want nil", res.Endpoint)
				}
				if res.Message != msgNotConfigured {
					t.Errorf("Message = %q", res.Message)
				}
				return
			}
			if res.Endpoint.Host != tt.wantHost || res.Endpoint.Port != tt.wantPort {
				t.Errorf("Endpoint = %+v", res.Endpoint)
			}
			if res.Scheme != SchemeHTTP {
				t.Errorf("Scheme = %q", res.Scheme)
			}
		})
	}
}

func TestResolve_DictionaryPrecedence(t *testing.T) {
	t.Run("HTTP wins, HTTPS secondary", func(t *testing.T) {
		res := resolve("urlsession", &Settings{Dictionary: map[string]any{
			"HTTPProxy":  "web.example.com",
			"HTTPPort":   8080,
			"HTTPSProxy": "secure.example.com",
			"HTTPSPort":  8443,
		}}, false)

		if !res.Found() || res.Scheme != SchemeHTTP {
			t.Fatalf("result = %+v", res)
		}
		if *res.Endpoint != (Endpoint{Host: "web.example.com", Port: 8080}) {
			t.Errorf("Endpoint = %+v", res.Endpoint)
		}
		if res.HTTPS == nil || *res.HTTPS != (Endpoint{Host: "secure.example.com", Port: 8443}) {
			t.Errorf("HTTPS = %+v", res.HTTPS)
		}
	})

	t.Run("HTTPS only becomes primary", func(t *testing.T) {
		res := resolve("urlsession", &Settings{Dictionary: map[string]any{
			"HTTPSProxy": "secure.example.com",
			"HTTPSPort":  8443,
		}}, false)

		if !res.Found() || res.Scheme != SchemeHTTPS {
			t.Fatalf("result = %+v", res)
		}
		if res.Endpoint.Host != "secure.example.com" || res.HTTPS != nil {
			t.Errorf("Endpoint = %+v, HTTPS = %+v", res.Endpoint, res.HTTPS)
		}
	})

	t.Run("Disabled HTTP falls to HTTPS", func(t *testing.T) {
		res := resolve("scutil", &Settings{Dictionary: map[string]any{
			"HTTPEnable":  "0",
			"HTTPProxy":   "web.example.com",
			"HTTPPort":    "8080",
			"HTTPSEnable": "1",
			"HTTPSProxy":  "secure.example.com",
			"HTTPSPort":   "8443",
		}}, false)

		if !res.Found() || res.Scheme != SchemeHTTPS || res.Endpoint.Port != 8443 {
			t.Fatalf("result = %+v", res)
		}
	})

	t.Run("String port from scutil", func(t *testing.T) {
		res := resolve("scutil", &Settings{Dictionary: map[string]any{
			"HTTPEnable": "1",
			"HTTPProxy":  "web.example.com",
			"HTTPPort":   "3128",
		}}, false)

		if !res.Found() || res.Endpoint.Port != 3128 {
			t.Fatalf("result = %+v", res)
		}
	})

	t.Run("Entries win over dictionary", func(t *testing.T) {
		res := resolve("snapshot", &Settings{
			Entries: []Entry{{Key: "HTTP_PROXY", Value: "entry.example.com:1", Scheme: SchemeHTTP}},
			Dictionary: map[string]any{
				"HTTPProxy": "dict.example.com",
				"HTTPPort":  2,
			},
		}, false)

		if !res.Found() || res.Endpoint.Host != "entry.example.com" {
			t.Fatalf("result = %+v", res)
		}
	})
}

func TestResolve_EntrySchemeCase(t *testing.T) {
	res := resolve("snapshot", &Settings{Entries: []Entry{
		{Key: "socks", Value: "127.0.0.1:1080", Scheme: "socks"},
		{Key: "https", Value: "secure.example.com:8443", Scheme: "Https"},
	}}, false)

	if !res.Found() || res.Scheme != SchemeHTTPS || res.Endpoint.Port != 8443 {
		t.Fatalf("result = %+v", res)
	}
	if res.SOCKS == nil || res.SOCKS.Port != 1080 {
		t.Errorf("SOCKS = %+v", res.SOCKS)
	}
}

func TestResolve_SOCKS(t *testing.T) {
	res := resolve("scutil", &Settings{Dictionary: map[string]any{
		"SOCKSEnable": 1,
		"SOCKSProxy":  "127.0.0.1",
		"SOCKSPort":   1080,
	}}, false)

	if res.Found() {
		t.Fatalf("SOCKS must never be the primary proxy: %+v", res)
	}
	if res.SOCKS == nil || res.SOCKS.String() != "127.0.0.1:1080" {
		t.Errorf("SOCKS = %+v", res.SOCKS)
	}
}

func TestResolve_Diagnostics(t *testing.T) {
	dictionary := map[string]any{
		"HTTPProxy":      "web.example.com",
		"HTTPPort":       8080,
		"ExceptionsList": []string{"*.local"},
	}

	res := resolve("urlsession", &Settings{Dictionary: dictionary}, true)
	if res.Diagnostics == nil {
		t.Fatal("Diagnostics should be populated")
	}
	if res.Diagnostics.Source != "urlsession" || res.Diagnostics.DictionaryCount != 3 {
		t.Errorf("Diagnostics = %+v", res.Diagnostics)
	}

	dictionary["Extra"] = true
	if _, ok := res.Diagnostics.Dictionary["Extra"]; ok {
		t.Error("Diagnostics should hold a copy of the dictionary")
	}

	if res := resolve("urlsession", &Settings{Dictionary: dictionary}, false); res.Diagnostics != nil {
		t.Error("Diagnostics should be nil unless requested")
	}
}

func TestResolve_NilSettings(t *testing.T) {
	res := resolve("urlsession", nil, true)
	if res.Status != StatusNotConfigured || res.Message != msgNotConfigured {
		t.Errorf("result = %+v", res)
	}
	if res.Diagnostics == nil || res.Diagnostics.DictionaryCount != 0 {
		t.Errorf("Diagnostics = %+v", res.Diagnostics)
	}
}
