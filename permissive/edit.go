package permissive

import (
	"fmt"
	"strings"
)

// Edits is a batch of component overrides. A nil field leaves the component
// alone; the Clear list removes optional components after the overrides are
// applied.
type Edits struct {
	Scheme   *string
	Username *string
	Password *string
	Host     *string
	Port     *string
	Path     *string
	Query    *string
	Fragment *string

	Clear []Component
}

// Component names an optional URL component that can be cleared.
type Component string

const (
	ComponentScheme   Component = "scheme"
	ComponentUserinfo Component = "userinfo"
	ComponentPort     Component = "port"
	ComponentQuery    Component = "query"
	ComponentFragment Component = "fragment"
)

// Components lists the clearable components in serialization order.
func Components() []Component {
	return []Component{ComponentScheme, ComponentUserinfo, ComponentPort, ComponentQuery, ComponentFragment}
}

// ParseComponent resolves a component name, ignoring case and spaces.
func ParseComponent(name string) (Component, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Components() {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// ParseComponents resolves a comma-separated list of component names.
// Empty entries are skipped.
func ParseComponents(list string) ([]Component, error) {
	var out []Component
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, ok := ParseComponent(name)
		if !ok {
			return nil, fmt.Errorf("unknown component %q (valid: %s)", name, ComponentNames())
		}
		out = append(out, c)
	}
	return out, nil
}

// ComponentNames lists the clearable component names, comma separated.
func ComponentNames() string {
	names := make([]string, 0, len(Components()))
	for _, c := range Components() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// Apply writes e into u. Unknown components in e.Clear are ignored.
func (e Edits) Apply(u *URL) {
	if e.Scheme != nil {
		u.Scheme = Some(*e.Scheme)
	}
	if e.Username != nil {
		u.Username = Some(*e.Username)
	}
	if e.Password != nil {
		u.Password = Some(*e.Password)
	}
	if e.Host != nil {
		u.Host = *e.Host
	}
	if e.Port != nil {
		u.Port = Some(*e.Port)
	}
	if e.Path != nil {
		u.Path = *e.Path
	}
	if e.Query != nil {
		u.Query = Some(*e.Query)
	}
	if e.Fragment != nil {
		u.Fragment = Some(*e.Fragment)
	}

	for _, c := range e.Clear {
		switch c {
		case ComponentScheme:
			u.Scheme = nil
		case ComponentUserinfo:
			u.Username = nil
			u.Password = nil
		case ComponentPort:
			u.Port = nil
		case ComponentQuery:
			u.Query = nil
		case ComponentFragment:
			u.Fragment = nil
		}
	}
}
