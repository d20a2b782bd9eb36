package proxy

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// fakeRunner answers commands from a table keyed by the joined command line.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, line)
	if err := f.errs[line]; err != nil {
		return nil, err
	}
	return []byte(f.outputs[line]), nil
}

// ============================================================================
// ANDROID SETTINGS TESTS
// ============================================================================

func TestReadAndroid(t *testing.T) {
	f := &fakeRunner{outputs: map[string]string{
		"settings get global http_proxy": "10.0.0.1:3128\n",
		"settings get secure http_proxy": "null\n",
	}}

	entries, err := ReadAndroid(context.Background(), f.run)
	if err != nil {
		t.Fatalf("ReadAndroid() error = %v", err)
	}

	want := []Entry{
		{Key: "global/http_proxy", Value: "10.0.0.1:3128", Scheme: SchemeHTTP},
		{Key: "secure/http_proxy", Value: "", Scheme: SchemeHTTP},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("ReadAndroid() = %+v, want %+v", entries, want)
	}
	if len(f.calls) != 2 {
		t.Errorf("expected 2 commands, got %v", f.calls)
	}
}

func TestReadAndroid_Error(t *testing.T) {
	boom := errors.New("permission denied")
	f := &fakeRunner{errs: map[string]error{"settings get global http_proxy": boom}}

	_, err := ReadAndroid(context.Background(), f.run)
	if !errors.Is(err, boom) {
		t.Fatalf("ReadAndroid() error = %v, want wrapped %v", err, boom)
	}
	if !strings.Contains(err.Error(), "global/http_proxy") {
		t.Errorf("error should name the key, got %q", err)
	}
}

// ============================================================================
// SCUTIL TESTS
// ============================================================================

func TestReadScutil(t *testing.T) {
	f := &fakeRunner{outputs: map[string]string{
		"scutil --proxy": "<dictionary> {\n  HTTPEnable : 1\n  HTTPPort : 8080\n  HTTPProxy : proxy.example.com\n}\n",
	}}

	d, err := ReadScutil(context.Background(), f.run)
	if err != nil {
		t.Fatalf("ReadScutil() error = %v", err)
	}
	if v, _ := d.String("HTTPProxy"); v != "proxy.example.com" {
		t.Errorf("HTTPProxy = %q", v)
	}
}

func TestReadScutil_Errors(t *testing.T) {
	t.Run("Command fails", func(t *testing.T) {
		f := &fakeRunner{errs: map[string]error{"scutil --proxy": errors.New("exit status 1")}}
		if _, err := ReadScutil(context.Background(), f.run); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("Unparsable output", func(t *testing.T) {
		f := &fakeRunner{outputs: map[string]string{"scutil --proxy": "No proxy\n"}}
		if _, err := ReadScutil(context.Background(), f.run); err == nil {
			t.Error("expected an error")
		}
	})
}

// ============================================================================
// WINDOWS PROXYSERVER TESTS
// ============================================================================

func TestSplitProxyServer(t *testing.T) {
	tests := []struct {
		name   string
		server string
		want   []Entry
	}{
		{
			name:   "Single proxy",
			server: "proxy.example.com:8080",
			want:   []Entry{{Key: "ProxyServer", Value: "proxy.example.com:8080", Scheme: SchemeHTTP}},
		},
		{
			name:   "Single proxy with scheme",
			server: " http://proxy.example.com:8080/ ",
			want:   []Entry{{Key: "ProxyServer", Value: "proxy.example.com:8080", Scheme: SchemeHTTP}},
		},
		{
			name:   "Per protocol",
			server: "ftp=ftp.example.com:21;https=secure.example.com:8443;HTTP=web.example.com:80;socks=socks.example.com:1080",
			want: []Entry{
				{Key: "ProxyServer[https]", Value: "secure.example.com:8443", Scheme: SchemeHTTPS},
				{Key: "ProxyServer[http]", Value: "web.example.com:80", Scheme: SchemeHTTP},
				{Key: "ProxyServer[socks]", Value: "socks.example.com:1080", Scheme: SchemeSOCKS},
			},
		},
		{
			name:   "Malformed parts skipped",
			server: "garbage;http=web.example.com:80",
			want:   []Entry{{Key: "ProxyServer[http]", Value: "web.example.com:80", Scheme: SchemeHTTP}},
		},
		{
			name:   "Empty",
			server: "   ",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitProxyServer(tt.server)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitProxyServer(%q) = %+v, want %+v", tt.server, got, tt.want)
			}
		})
	}
}
