package zammad

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

const (
	// apiPrefix is prepended to every endpoint path.
	apiPrefix = "/api/v1"

	modulePath = "github.com/vamshi9666/zammad"
)

var (
	// ErrStatus is returned when the API returns an unexpected status code.
	ErrStatus = errors.New("unexpected status code")
	// ErrNoBaseURL is returned when the credentials carry no base URL.
	ErrNoBaseURL = errors.New("no base URL provided")
	// ErrCredentials is returned when the credentials are incomplete for
	// their auth type.
	ErrCredentials = errors.New("incomplete credentials")
)

// AuthType selects how credentials are attached to a request.
type AuthType string

const (
	// AuthTypeBasic authenticates with username and password via HTTP basic auth.
	AuthTypeBasic AuthType = "basicAuth"
	// AuthTypeToken authenticates with a static access token.
	AuthTypeToken AuthType = "tokenAuth"
)

// Credentials holds the connection settings for a Zammad instance.
// Exactly one auth variant is used, selected by AuthType.
type Credentials struct {
	AuthType AuthType
	// BaseURL is the root of the instance, e.g. "https://company.zammad.com".
	// A single trailing slash is stripped.
	BaseURL string
	// Username and Password are used with AuthTypeBasic.
	Username string
	Password string
	// AccessToken is used with AuthTypeToken.
	AccessToken string
}

// Client holds configuration needed to call the Zammad API.
// Use [New] to create a new client.
type Client struct {
	baseURL string
	creds   Credentials

	httpClient *http.Client
	userAgent  string

	allowUnauthorizedCerts bool
}

// ClientOption configures a Client before use.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithAllowUnauthorizedCerts disables TLS certificate verification on the
// client's transport, for instances with self-signed certificates.
// A custom HTTP client whose transport is not an *http.Transport is
// replaced with a clone of the default transport.
func WithAllowUnauthorizedCerts() ClientOption {
	return func(c *Client) {
		c.allowUnauthorizedCerts = true
	}
}

// WithUserAgent sets a custom User-Agent header for API requests.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// New creates a Zammad API client from the provided credentials and applies
// any provided options.
func New(creds Credentials, opts ...ClientOption) (*Client, error) {
	if creds.BaseURL == "" {
		return nil, ErrNoBaseURL
	}

	baseURL := strings.TrimSuffix(creds.BaseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	switch creds.AuthType {
	case AuthTypeBasic:
		if creds.Username == "" || creds.Password == "" {
			return nil, fmt.Errorf("basic auth requires username and password: %w", ErrCredentials)
		}
	case AuthTypeToken:
		if creds.AccessToken == "" {
			return nil, fmt.Errorf("token auth requires an access token: %w", ErrCredentials)
		}
	default:
		return nil, fmt.Errorf("unknown auth type %q: %w", creds.AuthType, ErrCredentials)
	}

	c := &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.allowUnauthorizedCerts {
		c.httpClient.Transport = insecureTransport(c.httpClient.Transport)
	}

	if c.userAgent == "" {
		c.userAgent = userAgent()
	}

	return c, nil
}

// insecureTransport returns a copy of base with certificate verification
// disabled. A nil or non-*http.Transport base starts from the default.
func insecureTransport(base http.RoundTripper) http.RoundTripper {
	transport, ok := base.(*http.Transport)
	if !ok {
		transport = http.DefaultTransport.(*http.Transport)
	}
	transport = transport.Clone()

	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	}
	transport.TLSClientConfig.InsecureSkipVerify = true

	return transport
}

// version returns the module version of the zammad package.
// It returns "devel" if built without module version information.
func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}

	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			if dep.Version == "(devel)" {
				return "devel"
			}

			return dep.Version
		}
	}

	if info.Main.Path == modulePath {
		if info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		// If main version is (devel), we can try to read vcs revision
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return "devel+" + setting.Value[:7]
			}
		}
	}

	return "devel"
}

// userAgent returns the default User-Agent string for this package.
func userAgent() string {
	v := version()
	goVersion := runtime.Version()
	os := runtime.GOOS
	arch := runtime.GOARCH
	return fmt.Sprintf("go-zammad/%s (%s; %s/%s)", v, goVersion, os, arch)
}
