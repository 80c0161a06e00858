// Package schemas provides the embedded SQL migrations of the memorizer database.
package schemas

import "embed"

// Migrations contains all SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
