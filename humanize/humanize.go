// Package humanize renders URLs for display in narrow surfaces such as
// terminal status lines. The result drops everything a reader does not need
// to recognise the target: scheme, credentials, query, fragment, the
// scheme's default port and a root path.
//
//	humanize.Humanize("https://user:pw@example.com:443/?q=1#top") // "example.com", nil
//	humanize.Humanize("https://example.com:8443/a/b")             // "example.com:8443/a/b", nil
//
// The output is for display only and is not guaranteed to parse back to the
// same URL.
package humanize

import (
	neturl "net/url"
	"strings"

	"github.com/jongio/humanurl/logutil"
	"github.com/jongio/humanurl/urlutil"
)

var log = logutil.NewLogger("humanize")

// Humanize parses input with urlutil.Parse and returns its display form.
// Invalid input yields a *urlutil.ParseError and an empty string.
func Humanize(input string) (string, error) {
	u, err := urlutil.Parse(input)
	if err != nil {
		log.Debug("humanize rejected input", "input", input, "error", err)
		return "", err
	}
	return URL(u), nil
}

// URL returns the display form of an already parsed URL.
func URL(u *neturl.URL) string {
	var b strings.Builder
	b.WriteString(authority(u))

	if u.Opaque != "" {
		b.WriteString(u.Opaque)
		return b.String()
	}

	if path := u.EscapedPath(); path != "/" {
		b.WriteString(path)
	}
	return b.String()
}

// authority returns host plus ":port" when the port is not the scheme default.
func authority(u *neturl.URL) string {
	host := u.Hostname()
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	port := u.Port()
	if def, ok := urlutil.DefaultPort(u.Scheme); ok && port == def {
		port = ""
	}
	if port == "" {
		return host
	}
	return host + ":" + port
}
