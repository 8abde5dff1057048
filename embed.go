package fittrack

import "embed"

// ContentFS holds the markdown notes shown with generated plans and on the dashboard.
//
//go:embed content
var ContentFS embed.FS
