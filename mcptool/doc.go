// Package mcptool exposes humanurl's URL transformations as Model Context
// Protocol tools served over stdio, so agents can shorten or rewrite URLs
// without shelling out to the CLI.
//
// Tools:
//   - humanize_url: display form of a URL
//   - rewrite_url: permissive rewrite of individual components
//   - url_components: the parsed components as JSON
//
// Calls share a token-bucket limiter; a call over the limit returns a tool
// error instead of running.
package mcptool
