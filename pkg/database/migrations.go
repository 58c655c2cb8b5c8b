package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. Active project-agent assignments must be unique
// per (project, agent); inactive historical rows may repeat.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS projectagent_project_id_agent_id_active
		ON project_agents (project_id, agent_id)
		WHERE is_active`)
	if err != nil {
		return fmt.Errorf("failed to create active assignment index: %w", err)
	}

	return nil
}
