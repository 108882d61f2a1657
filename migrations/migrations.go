// Package migrations hands the embedded go-portfolio schema to
// go-persistence-bun.
package migrations

import (
	"io/fs"
	"sync"

	portfolio "github.com/goliatone/go-portfolio"
)

// Dialects lists the databases every migration must have a file for.
var Dialects = []string{"postgres", "sqlite"}

var portfolioFS = sync.OnceValues(func() (fs.FS, error) {
	return fs.Sub(portfolio.GetMigrationsFS(), "data/sql/migrations")
})

// FS returns the portfolio migrations directory: PostgreSQL files at the
// root and SQLite overrides under sqlite/.
func FS() (fs.FS, error) {
	return portfolioFS()
}

// Filesystems returns the portfolio migrations followed by extra, skipping
// nil entries. Hosts feed each one to RegisterDialectMigrations.
func Filesystems(extra ...fs.FS) []fs.FS {
	out := make([]fs.FS, 0, 1+len(extra))
	if core, err := FS(); err == nil {
		out = append(out, core)
	}
	for _, fsys := range extra {
		if fsys != nil {
			out = append(out, fsys)
		}
	}
	return out
}
