// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations registered: the first statement goose sends fails
	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedSchema_DeclaresAllTables(t *testing.T) {
	raw, err := fs.ReadFile(embedMigrations, "00001_init.sql")
	require.NoError(t, err)

	schema := string(raw)
	for _, table := range []string{"students", "agencies", "secretaries", "secretary_logins", "job_offers", "job_applications"} {
		assert.Contains(t, schema, "CREATE TABLE "+table+" (")
		assert.Contains(t, schema, "DROP TABLE "+table+";")
	}
	assert.True(t, strings.HasPrefix(schema, "-- +goose Up"))
}
