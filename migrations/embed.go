// Package migrations embeds the versioned SQL schema files for both
// supported backends. Each dialect lives in its own subdirectory; stores
// select theirs with fs.Sub.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
