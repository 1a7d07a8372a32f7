package handlers_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uninest-dev/uninest/internal/handlers"
	"github.com/uninest-dev/uninest/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// dryRun opens a dialect-specific session that only builds SQL, so the
// generated query text can be inspected without a live server.
func dryRun(t *testing.T, dialector gorm.Dialector) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(dialector, &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return gdb
}

func amenitiesSQL(t *testing.T, gdb *gorm.DB) (string, []interface{}) {
	t.Helper()

	filter := handlers.PropertyFilter{Amenities: []string{"wifi", "ac"}}

	var properties []models.Property
	stmt := filter.Apply(gdb.Model(&models.Property{})).Find(&properties).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestPropertyFilterAmenitiesPostgresSQL(t *testing.T) {
	gdb := dryRun(t, postgres.Open("host=localhost user=uninest dbname=uninest sslmode=disable"))

	sql, vars := amenitiesSQL(t, gdb)

	// One containment predicate per requested amenity, AND semantics.
	assert.Equal(t, 2, strings.Count(sql, "@>"))
	assert.Contains(t, sql, "::jsonb")
	assert.NotContains(t, sql, "json_each")

	assert.Contains(t, vars, `["wifi"]`)
	assert.Contains(t, vars, `["ac"]`)
}

func TestPropertyFilterAmenitiesSqliteSQL(t *testing.T) {
	gdb := dryRun(t, sqlite.Open("file::memory:"))

	sql, vars := amenitiesSQL(t, gdb)

	assert.Equal(t, 2, strings.Count(sql, "json_each(amenities)"))
	assert.NotContains(t, sql, "@>")

	assert.Contains(t, vars, "wifi")
	assert.Contains(t, vars, "ac")
}
