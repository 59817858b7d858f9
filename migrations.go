// Package estimator embeds the SQL migrations applied by the migrate command.
package estimator

import "embed"

// Migrations holds the goose migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
