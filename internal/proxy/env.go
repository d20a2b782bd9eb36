package proxy

import (
	"net/url"
	"strings"

	"golang.org/x/net/http/httpproxy"
)

// probe URLs stand in for an arbitrary outbound request when asking the
// environment configuration which proxy applies.
var (
	httpProbe  = &url.URL{Scheme: "http", Host: "example.com"}
	httpsProbe = &url.URL{Scheme: "https", Host: "example.com"}
)

// defaultPorts fills in the port of a proxy URL that omits one.
var defaultPorts = map[string]string{
	"http":    "80",
	"https":   "443",
	"socks5":  "1080",
	"socks5h": "1080",
}

// EnvConfig builds an httpproxy configuration from a variable lookup.
// ALL_PROXY backs up both HTTP_PROXY and HTTPS_PROXY.
func EnvConfig(getenv func(string) string) *httpproxy.Config {
	return &httpproxy.Config{
		HTTPProxy:  getEnvAny(getenv, "HTTP_PROXY", "http_proxy", "ALL_PROXY", "all_proxy"),
		HTTPSProxy: getEnvAny(getenv, "HTTPS_PROXY", "https_proxy", "ALL_PROXY", "all_proxy"),
		NoProxy:    getEnvAny(getenv, "NO_PROXY", "no_proxy"),
		CGI:        getenv("REQUEST_METHOD") != "",
	}
}

// ReadEnvironment resolves the proxy environment variables into entries.
// A proxy URL that httpproxy rejects is treated as unset.
func ReadEnvironment(getenv func(string) string) []Entry {
	cfg := EnvConfig(getenv)
	proxyFunc := cfg.ProxyFunc()

	var entries []Entry
	for _, p := range []struct {
		key    string
		probe  *url.URL
		scheme string
	}{
		{"HTTP_PROXY", httpProbe, SchemeHTTP},
		{"HTTPS_PROXY", httpsProbe, SchemeHTTPS},
	} {
		u, err := proxyFunc(p.probe)
		if err != nil || u == nil {
			continue
		}

		scheme := p.scheme
		if strings.HasPrefix(u.Scheme, "socks") {
			scheme = SchemeSOCKS
		}
		entries = append(entries, Entry{Key: p.key, Value: hostPort(u), Scheme: scheme})
	}
	return entries
}

// hostPort reduces a proxy URL to "host:port".
func hostPort(u *url.URL) string {
	port := u.Port()
	if port == "" {
		port = defaultPorts[u.Scheme]
	}
	if port == "" {
		return u.Hostname()
	}
	return u.Hostname() + ":" + port
}

func getEnvAny(getenv func(string) string, names ...string) string {
	for _, n := range names {
		if val := getenv(n); val != "" {
			return val
		}
	}
	return ""
}
