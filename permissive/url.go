package permissive

import (
	neturl "net/url"
	"strings"

	"github.com/jongio/humanurl/urlutil"
)

// URL is an independent, mutable decomposition of a URL. Optional components
// are nil when absent. Host and Path are always present, possibly empty.
type URL struct {
	Scheme   *string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Username *string `json:"username,omitempty" yaml:"username,omitempty"`
	Password *string `json:"password,omitempty" yaml:"password,omitempty"`
	Host     string  `json:"host" yaml:"host"`
	Port     *string `json:"port,omitempty" yaml:"port,omitempty"`
	Path     string  `json:"path" yaml:"path"`
	Query    *string `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment *string `json:"fragment,omitempty" yaml:"fragment,omitempty"`

	// Opaque marks URLs without an authority (mailto:, urn:). Path then holds
	// the opaque part and no "//" is written after the scheme.
	Opaque bool `json:"opaque,omitempty" yaml:"opaque,omitempty"`
}

// RedactedPassword replaces passwords in Redacted copies.
const RedactedPassword = "********"

// Some returns a pointer to a copy of s, for setting optional components.
func Some(s string) *string {
	return &s
}

// Parse parses raw strictly with urlutil.Parse and copies the result.
func Parse(raw string) (*URL, error) {
	p, err := urlutil.Parse(raw)
	if err != nil {
		return nil, err
	}
	return FromParsed(p), nil
}

// FromParsed copies every component of p. The returned URL shares no
// storage with p.
func FromParsed(p *neturl.URL) *URL {
	u := &URL{
		Scheme: optional(p.Scheme),
	}

	// Userinfo is copied in its escaped form so String reproduces it.
	if p.User != nil {
		name, pw, hasPw := strings.Cut(p.User.String(), ":")
		u.Username = optional(name)
		if hasPw {
			u.Password = Some(pw)
		}
	}

	host := p.Hostname()
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	u.Host = host
	u.Port = optional(p.Port())

	if p.Opaque != "" {
		u.Opaque = true
		u.Path = p.Opaque
	} else {
		u.Path = p.EscapedPath()
	}

	if p.RawQuery != "" || p.ForceQuery {
		u.Query = Some(p.RawQuery)
	}
	u.Fragment = optional(p.EscapedFragment())

	return u
}

// String serializes u by concatenating its components in URL order.
// No component is validated or escaped.
func (u *URL) String() string {
	var b strings.Builder

	if u.Scheme != nil {
		b.WriteString(*u.Scheme)
		b.WriteByte(':')
		if !u.Opaque {
			b.WriteString("//")
		}
	}

	if u.Username != nil {
		b.WriteString(*u.Username)
	}
	if u.Password != nil {
		b.WriteByte(':')
		b.WriteString(*u.Password)
	}
	if u.Username != nil || u.Password != nil {
		b.WriteByte('@')
	}

	b.WriteString(u.Host)
	if u.Port != nil {
		b.WriteByte(':')
		b.WriteString(*u.Port)
	}

	b.WriteString(u.Path)

	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(*u.Query)
	}
	if u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}

	return b.String()
}

// Redacted returns a copy of u with a present password replaced by
// RedactedPassword.
func (u *URL) Redacted() *URL {
	c := u.Clone()
	if c.Password != nil {
		c.Password = Some(RedactedPassword)
	}
	return c
}

// Clone returns a deep copy of u.
func (u *URL) Clone() *URL {
	c := *u
	c.Scheme = clonePtr(u.Scheme)
	c.Username = clonePtr(u.Username)
	c.Password = clonePtr(u.Password)
	c.Port = clonePtr(u.Port)
	c.Query = clonePtr(u.Query)
	c.Fragment = clonePtr(u.Fragment)
	return &c
}

// PathSegments splits a path that starts with "/" into its segments.
// It returns false for opaque or relative paths.
func (u *URL) PathSegments() ([]string, bool) {
	if u.Opaque || !strings.HasPrefix(u.Path, "/") {
		return nil, false
	}
	return strings.Split(u.Path[1:], "/"), true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return Some(s)
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	return Some(*p)
}
