package portfolio

import "embed"

// MigrationsFS contains SQL migrations for both PostgreSQL and SQLite.
//
// Root files (data/sql/migrations/*.sql) target PostgreSQL; SQLite overrides
// live in data/sql/migrations/sqlite/*.sql. go-persistence-bun picks the
// right set from the database dialect.
//
// Usage:
//
//	import "io/fs"
//	import portfolio "github.com/goliatone/go-portfolio"
//	import persistence "github.com/goliatone/go-persistence-bun"
//
//	migrationsFS, _ := fs.Sub(portfolio.GetMigrationsFS(), "data/sql/migrations")
//	client.RegisterDialectMigrations(
//	    migrationsFS,
//	    persistence.WithDialectSourceLabel("."),
//	    persistence.WithValidationTargets("postgres", "sqlite"),
//	)
//
//go:embed data/sql/migrations/*.sql data/sql/migrations/sqlite/*.sql
var MigrationsFS embed.FS

// GetMigrationsFS exposes the SQL migration files so host applications can
// register them with go-persistence-bun or another runner.
func GetMigrationsFS() embed.FS {
	return MigrationsFS
}
