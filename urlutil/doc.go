// Package urlutil is the strict side of humanurl: it parses URL strings into
// *net/url.URL values and enforces the rules net/url leaves to its callers.
//
// net/url accepts almost anything, including relative references such as
// "not a url". Parse tightens that to what a URL-standard parser accepts:
//   - the input must carry a scheme (absolute URL)
//   - special schemes (http, https, ws, wss, ftp) must have a host
//   - ports must be numeric
//
// It also applies the normalizations a standards parser performs on parse,
// so that downstream packages see the same components regardless of how the
// input was spelled:
//   - the scheme's default port is elided ("https://a.com:443" has no port)
//   - special-scheme hosts are lowercased
//   - an empty special-scheme path becomes "/"
//
// # Usage
//
//	u, err := urlutil.Parse("https://User@Example.com:443")
//	if err != nil {
//		var perr *urlutil.ParseError
//		if errors.As(err, &perr) {
//			return fmt.Errorf("bad url %q: %w", perr.Input, err)
//		}
//	}
//	fmt.Println(u.String()) // https://User@example.com/
//
// Mutations through SetScheme are checked the same way; use package
// permissive when an edit must bypass these rules.
package urlutil
