package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/codeframe-hq/codeframe/pkg/database"
	"github.com/codeframe-hq/codeframe/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient creates a test database client backed by an isolated schema.
// In CI (when CI_DATABASE_URL is set) it connects to the external PostgreSQL
// service container; in local dev it spins up a testcontainer. Cleanup is
// automatic when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	// Partial unique indexes sit outside the ent schema and must be applied
	// separately, mirroring startup
	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
