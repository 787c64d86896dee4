package locale

import "embed"

//go:embed active.*.toml
var FS embed.FS
