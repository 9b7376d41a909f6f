package massminify

import "embed"

//go:embed topics
var topicsFS embed.FS
