package ribcl

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Transport defaults.
const (
	DefaultTimeout = 10 * time.Second
	DefaultPath    = "/ribcl"

	contentTypeXML = "text/xml"
)

// ConnectionConfig addresses one controller. It is fixed for the life of the
// process and owned by the Transport.
type ConnectionConfig struct {
	Host     string        `mapstructure:"host"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	HTTPS    bool          `mapstructure:"https"`
	Path     string        `mapstructure:"path"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// withDefaults fills zero fields.
func (c ConnectionConfig) withDefaults() ConnectionConfig {
	if c.Path == "" {
		c.Path = DefaultPath
	}
	if !strings.HasPrefix(c.Path, "/") {
		c.Path = "/" + c.Path
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// URL is the endpoint envelopes are posted to.
func (c ConnectionConfig) URL() string {
	c = c.withDefaults()
	scheme := "http"
	if c.HTTPS {
		scheme = "https"
	}
	return scheme + "://" + c.Host + c.Path
}

// TransportError reports a request that never produced a response body:
// DNS, connect, TLS, timeout or a body read failure.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ribcl %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Transport posts envelopes to a controller.
type Transport struct {
	cfg    ConnectionConfig
	client *http.Client
}

// NewTransport builds a Transport for cfg. The controller normally serves a
// self-signed certificate, so certificate verification is switched off.
// Keep-alives are off too: every envelope logs in again and each exchange
// stands alone.
func NewTransport(cfg ConnectionConfig) *Transport {
	cfg = cfg.withDefaults()
	tr := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		TLSClientConfig:   &tls.Config{InsecureSkipVerify: true},
		DisableKeepAlives: true,
	}
	return &Transport{
		cfg:    cfg,
		client: &http.Client{Transport: tr, Timeout: cfg.Timeout},
	}
}

// Config returns the connection parameters in use.
func (t *Transport) Config() ConnectionConfig { return t.cfg }

// Send posts envelope and returns the reply body whatever the HTTP status;
// RIBCL reports failures inside the body.
func (t *Transport) Send(ctx context.Context, envelope string) (string, error) {
	url := t.cfg.URL()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(envelope))
	if err != nil {
		return "", &TransportError{Op: "build request", URL: url, Err: err}
	}
	req.Header.Set("Content-Type", contentTypeXML)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", &TransportError{Op: "post", URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Op: "read body", URL: url, Err: err}
	}
	return string(body), nil
}
