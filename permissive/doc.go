// Package permissive holds a freely editable copy of a parsed URL.
//
// A *net/url.URL produced by urlutil.Parse is checked against URL-standard
// rules, and urlutil.SetScheme refuses edits the standard forbids (for
// example turning an https URL into a "jojo" URL). URL in this package drops
// those rules: every component is a plain field, and String concatenates the
// fields without validating them.
//
//	u, _ := permissive.Parse("https://example.com")
//	u.Scheme = permissive.Some("jojo")
//	fmt.Println(u) // jojo://example.com/
//
// Callers own the result. Nonsensical edits, such as a scheme with an empty
// host, produce nonsensical strings rather than errors.
package permissive
