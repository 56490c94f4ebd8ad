// Package templates holds the HTML views and their static assets.
package templates

import "embed"

// FS serves the stylesheet and script under /assets.
//
//go:embed assets
var FS embed.FS
