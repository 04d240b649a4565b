package dbx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		in      string
		want    string
	}{
		{
			name:    "sqlite passthrough",
			dialect: DialectSQLite,
			in:      `SELECT value FROM kv_store WHERE key = ?`,
			want:    `SELECT value FROM kv_store WHERE key = ?`,
		},
		{
			name:    "postgres numbers placeholders in order",
			dialect: DialectPostgres,
			in:      `INSERT INTO kv_store (key, value) VALUES (?, ?)`,
			want:    `INSERT INTO kv_store (key, value) VALUES ($1, $2)`,
		},
		{
			name:    "question mark inside literal is kept",
			dialect: DialectPostgres,
			in:      `SELECT '?' FROM t WHERE a = ?`,
			want:    `SELECT '?' FROM t WHERE a = $1`,
		},
		{
			name:    "no placeholders",
			dialect: DialectPostgres,
			in:      `DELETE FROM kv_store`,
			want:    `DELETE FROM kv_store`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rebind(tt.dialect, tt.in))
		})
	}
}

func TestDBTX_SatisfiedByDBAndTx(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var _ DBTX = db

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	var _ DBTX = tx
	require.NoError(t, tx.Rollback())
}
