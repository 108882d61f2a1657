package migrations_test

import (
	"context"
	"database/sql"
	"io/fs"
	"sort"
	"strings"
	"testing"
	"testing/fstest"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-portfolio/migrations"
)

func TestMigrationsApplyToSQLite(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx := context.Background()
	registered := migrations.Filesystems()
	require.NotEmpty(t, registered)
	for _, fsys := range registered {
		require.NoError(t, applyFilesystem(ctx, db, fsys, "sqlite/*.up.sql"))
	}

	var tableName string
	err = db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name='portfolios'").Scan(&tableName)
	require.NoError(t, err)
	require.Equal(t, "portfolios", tableName)

	_, err = db.ExecContext(ctx, `INSERT INTO portfolios (id, owner_id, slug, profile, personalization, version, created_at, updated_at)
		VALUES ('a', 'owner-1', 'Ada', '{}', '{}', 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO portfolios (id, owner_id, slug, profile, personalization, version, created_at, updated_at)
		VALUES ('b', 'owner-2', 'ada', '{}', '{}', 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	require.Error(t, err, "slugs are unique regardless of case")
}

func TestMigrationsAreReversible(t *testing.T) {
	for _, fsys := range migrations.Filesystems() {
		ups, err := fs.Glob(fsys, "*.up.sql")
		require.NoError(t, err)
		for _, up := range ups {
			_, err := fs.Stat(fsys, strings.TrimSuffix(up, ".up.sql")+".down.sql")
			require.NoError(t, err, "missing down migration for %s", up)
			_, err = fs.Stat(fsys, "sqlite/"+up)
			require.NoError(t, err, "missing sqlite override for %s", up)
		}
	}
}

func TestFilesystems_AppendsExtras(t *testing.T) {
	core, err := migrations.FS()
	require.NoError(t, err)

	extra := fstest.MapFS{"0002_extra.up.sql": &fstest.MapFile{Data: []byte("SELECT 1;")}}
	all := migrations.Filesystems(nil, extra)
	require.Len(t, all, 2)
	require.Equal(t, core, all[0])
	require.Equal(t, extra, all[1])

	for _, dialect := range migrations.Dialects {
		if dialect == "postgres" {
			continue
		}
		matches, err := fs.Glob(core, dialect+"/*.up.sql")
		require.NoError(t, err)
		require.NotEmpty(t, matches, dialect)
	}
}

func applyFilesystem(ctx context.Context, db *sql.DB, filesystem fs.FS, pattern string) error {
	entries, err := fs.Glob(filesystem, pattern)
	if err != nil {
		return err
	}
	sort.Strings(entries)
	for _, entry := range entries {
		sqlBytes, err := fs.ReadFile(filesystem, entry)
		if err != nil {
			return err
		}
		for _, stmt := range splitStatements(string(sqlBytes)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitStatements(sql string) []string {
	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" && !isCommentOnly(part) {
			out = append(out, part)
		}
	}
	return out
}

func isCommentOnly(stmt string) bool {
	for _, line := range strings.Split(stmt, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "--") {
			return false
		}
	}
	return true
}
