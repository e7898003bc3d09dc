package database

import (
	"path/filepath"
	"testing"

	"idealPrice/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(config.DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "pricing",
		Password: "secret",
		Name:     "ideal_price",
		SSLMode:  "disable",
	})

	assert.Equal(t, "host=db port=5433 user=pricing password=secret dbname=ideal_price sslmode=disable", dsn)
}

func TestOpenSQLite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "datasets.sqlite"))
	require.NoError(t, err)
	defer db.Close()

	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}

func TestClosePostgres_Nil(t *testing.T) {
	assert.NoError(t, ClosePostgres(nil))
}
