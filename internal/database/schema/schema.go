package schema

import "embed"

// MigrationsDir is the directory inside Migrations holding goose files
const MigrationsDir = "migrations"

// Migrations contains the goose migration files for the state store
//
//go:embed migrations/*.sql
var Migrations embed.FS
