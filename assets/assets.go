package assets

import "embed"

// AssetsFS holds the stylesheet built by "do gen" and the client scripts.
//
//go:embed css js
var AssetsFS embed.FS
