// Package proxyinfo reports the HTTP proxy configured in the operating
// system's settings store.
//
// Every platform store (Android Settings.Global/Settings.Secure, the macOS
// SystemConfiguration dictionary, a URLSession connection proxy dictionary,
// the Windows WinINet registry values, proxy environment variables) is read
// as raw strings or a raw dictionary and reduced by one shared parsing rule
// to at most one validated Endpoint.
//
// Basic Usage:
//
//	detector, err := proxyinfo.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := detector.Lookup(ctx)
//	if err != nil {
//	    log.Fatal(err) // the settings store could not be read
//	}
//	if result.Found() {
//	    fmt.Println(result.Endpoint) // proxy.example.com:8080
//	}
//
// Parsing a raw value directly:
//
//	ep, ok := proxyinfo.ParseHostPortString("10.0.0.1:3128")
//
// Host applications that cross a method-call boundary (for example a mobile
// UI layer calling into Go) can use Handler, which maps results to the
// {"host", "port"} record or a labeled PROXY_ERROR.
package proxyinfo
