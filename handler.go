package proxyinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cybergodev/proxyinfo/internal/validation"
)

// Method names served to mobile host applications.
const (
	MethodGetSystemProxy       = "getSystemProxy"
	MethodGetNSURLSessionProxy = "getNSURLSessionProxy"
)

// ErrorCodeProxy labels every lookup failure returned by a Handler.
const ErrorCodeProxy = "PROXY_ERROR"

const msgLookupFailed = "Failed to get proxy settings"

// Encoder turns a lookup result into the value sent back to the caller.
type Encoder func(*Result) any

// EncodeEndpoint returns the two-field record {"host", "port"} for a found
// proxy and nil otherwise.
func EncodeEndpoint(r *Result) any {
	if !r.Found() {
		return nil
	}
	return r.Endpoint.Map()
}

// EncodeDiagnostics returns the detailed map served by getNSURLSessionProxy:
// the primary proxy with its type, a secondary HTTPS (or SOCKS) proxy, the
// raw dictionary and its key count, and a message when there is no
// dictionary at all.
func EncodeDiagnostics(r *Result) any {
	m := map[string]any{"source": r.Source}

	if r.Found() {
		m["host"] = r.Endpoint.Host
		m["port"] = r.Endpoint.Port
		m["type"] = string(r.Scheme)
	}
	if r.HTTPS != nil {
		m["httpsHost"] = r.HTTPS.Host
		m["httpsPort"] = r.HTTPS.Port
	}
	if r.SOCKS != nil {
		m["socksHost"] = r.SOCKS.Host
		m["socksPort"] = r.SOCKS.Port
	}

	dictionary := map[string]any{}
	count := 0
	if r.Diagnostics != nil && r.Diagnostics.Dictionary != nil {
		dictionary = r.Diagnostics.Dictionary
		count = r.Diagnostics.DictionaryCount
	} else if !r.Found() {
		m["message"] = msgNotConfigured
	}
	m["connectionProxyDictionary"] = dictionary
	m["proxyDictionaryCount"] = count

	return m
}

type method struct {
	detector *Detector
	encode   Encoder
}

// Handler dispatches named method calls to Detectors, mirroring the
// platform channel a mobile UI layer calls into. It is safe for concurrent
// use.
type Handler struct {
	mu      sync.RWMutex
	methods map[string]method
}

// NewHandler creates an empty Handler.
func NewHandler() *Handler {
	return &Handler{methods: make(map[string]method)}
}

// Register serves method with the given detector. A nil encoder uses
// EncodeEndpoint. Registering a method again replaces it.
func (h *Handler) Register(name string, d *Detector, encode Encoder) error {
	if err := validation.ValidateMethodName(name); err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("detector for method %q cannot be nil", name)
	}
	if encode == nil {
		encode = EncodeEndpoint
	}

	h.mu.Lock()
	h.methods[name] = method{detector: d, encode: encode}
	h.mu.Unlock()
	return nil
}

// Handle runs a method call. Unknown methods return ErrNotImplemented; a
// failed lookup returns a *MethodError with Code ErrorCodeProxy.
func (h *Handler) Handle(ctx context.Context, name string) (any, error) {
	h.mu.RLock()
	m, ok := h.methods[name]
	h.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, name)
	}

	// Encoders always see the raw settings, whatever the Detector's config.
	res, err := m.detector.lookup(ctx, true)
	if err != nil {
		return nil, &MethodError{
			Code:    ErrorCodeProxy,
			Message: msgLookupFailed,
			Details: res.Message,
			err:     err,
		}
	}
	return m.encode(res), nil
}

// HandleJSON runs a method call and encodes the value as JSON, for callers
// that can only exchange strings (gomobile bindings, for example). A
// missing proxy encodes as "null".
func (h *Handler) HandleJSON(ctx context.Context, name string) ([]byte, error) {
	v, err := h.Handle(ctx, name)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
