package db

import "embed"

// Migrations holds the SQL migration files, embedded so production
// builds don't need the source tree on disk.
//
//go:embed migrations
var Migrations embed.FS
