package database

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationFilesEmbedded(t *testing.T) {
	ups, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	assert.NoError(t, err)
	downs, err := fs.Glob(migrationFiles, "migrations/*.down.sql")
	assert.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}
