package urlutil

import (
	"errors"
	"fmt"
	neturl "net/url"
	"strconv"
	"strings"
)

// Sentinel causes carried by ParseError and SetScheme.
var (
	ErrEmpty        = errors.New("url is empty")
	ErrRelative     = errors.New("relative URL without a base")
	ErrMissingHost  = errors.New("empty host")
	ErrInvalidPort  = errors.New("invalid port number")
	ErrBadScheme    = errors.New("invalid scheme")
	ErrSchemeChange = errors.New("cannot change between special and non-special scheme")
)

// ParseError reports an input that is not a syntactically valid absolute URL.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// defaultPorts lists the special schemes and their registered default ports.
// "file" is special but has no port.
var defaultPorts = map[string]string{
	"ftp":   "21",
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"file":  "",
}

// DefaultPort returns the registered default port for scheme.
func DefaultPort(scheme string) (string, bool) {
	port, ok := defaultPorts[strings.ToLower(scheme)]
	if !ok || port == "" {
		return "", false
	}
	return port, true
}

// IsSpecial reports whether scheme is one of the special schemes whose URLs
// always have an authority.
func IsSpecial(scheme string) bool {
	_, ok := defaultPorts[strings.ToLower(scheme)]
	return ok
}

// Parse parses raw as an absolute URL and normalizes it.
// All failures are returned as *ParseError.
func Parse(raw string) (*neturl.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &ParseError{Input: raw, Err: ErrEmpty}
	}

	u, err := neturl.Parse(raw)
	if err != nil {
		var uerr *neturl.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, &ParseError{Input: raw, Err: err}
	}

	if u.Scheme == "" {
		return nil, &ParseError{Input: raw, Err: ErrRelative}
	}

	if port := u.Port(); port != "" && !validPort(port) {
		return nil, &ParseError{Input: raw, Err: ErrInvalidPort}
	}

	if IsSpecial(u.Scheme) {
		if u.Scheme != "file" && u.Hostname() == "" {
			return nil, &ParseError{Input: raw, Err: ErrMissingHost}
		}
		normalizeSpecial(u)
	}

	return u, nil
}

// normalizeSpecial lowercases the host, drops the default port and gives
// hierarchical URLs a root path.
func normalizeSpecial(u *neturl.URL) {
	host := strings.ToLower(u.Hostname())
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	port := u.Port()
	if def, ok := DefaultPort(u.Scheme); ok && port == def {
		port = ""
	}
	if port != "" {
		host += ":" + port
	}
	u.Host = host

	if u.Opaque == "" && u.Path == "" {
		u.Path = "/"
		u.RawPath = ""
	}
}

// SetScheme changes the scheme of u in place, applying the same rules a
// standards-conformant URL parser applies to a scheme setter. u is left
// unchanged when an error is returned.
func SetScheme(u *neturl.URL, scheme string) error {
	if !ValidScheme(scheme) {
		return fmt.Errorf("set scheme %q: %w", scheme, ErrBadScheme)
	}
	scheme = strings.ToLower(scheme)

	if IsSpecial(u.Scheme) != IsSpecial(scheme) {
		return fmt.Errorf("set scheme %q on %s URL: %w", scheme, u.Scheme, ErrSchemeChange)
	}
	if scheme == "file" && (u.User != nil || u.Port() != "") {
		return fmt.Errorf("set scheme %q: file URLs cannot carry credentials or a port: %w", scheme, ErrSchemeChange)
	}

	u.Scheme = scheme
	if def, ok := DefaultPort(scheme); ok && u.Port() == def {
		u.Host = strings.TrimSuffix(u.Host, ":"+def)
	}
	return nil
}

// NormalizeScheme prepends defaultScheme:// to raw when raw has no scheme.
// Inputs that already carry a scheme are returned unchanged (after trimming).
//
// Example:
//
//	urlutil.NormalizeScheme("example.com/a", "https") // "https://example.com/a"
//	urlutil.NormalizeScheme("ftp://a.org", "https")   // "ftp://a.org"
func NormalizeScheme(raw, defaultScheme string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || defaultScheme == "" {
		return raw
	}

	// host:port parses as scheme "host"; only treat it as a scheme when
	// followed by "//" or when the remainder is not a port.
	if i := strings.Index(raw, ":"); i > 0 && ValidScheme(raw[:i]) {
		rest := raw[i+1:]
		if strings.HasPrefix(rest, "//") || !startsWithDigit(rest) {
			return raw
		}
	}

	return defaultScheme + "://" + strings.TrimPrefix(raw, "//")
}

// ValidScheme reports whether s matches ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func ValidScheme(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// validPort reports whether s is a decimal port number in 0-65535.
func validPort(s string) bool {
	_, err := strconv.ParseUint(s, 10, 16)
	return err == nil
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
