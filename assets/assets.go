// Package assets embeds the block models, blockstates and shaders shipped with the
// binary.
package assets

import "embed"

// FS holds models/, blockstates/ and shaders/.
//
//go:embed models blockstates shaders
var FS embed.FS
