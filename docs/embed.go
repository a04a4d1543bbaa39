package docs

import "embed"

// FS contains long-form Markdown docs bundled with the skm binary.
//
//go:embed index.yaml guide reference design
var FS embed.FS
