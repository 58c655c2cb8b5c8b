package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entauditlog "github.com/codeframe-hq/codeframe/ent/auditlog"
	"github.com/codeframe-hq/codeframe/pkg/config"
	testdb "github.com/codeframe-hq/codeframe/test/database"
)

func TestRecordMasksCredentialsInMetadata(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	audit := NewAuditService(client.Client, config.AuditVerbosityLow)

	audit.Record(ctx, "llm.call.started", "task", "task-1", map[string]interface{}{
		"prompt":  "use sk-ant-api03-deadbeef1234 to authenticate",
		"headers": []string{"Authorization: Bearer abcdef123456"},
		"attempt": 2,
	})

	row, err := client.AuditLog.Query().
		Where(entauditlog.ResourceIDEQ("task-1")).
		Only(ctx)
	require.NoError(t, err)

	assert.Equal(t, "use ***MASKED_API_KEY*** to authenticate", row.Metadata["prompt"])
	headers, ok := row.Metadata["headers"].([]interface{})
	require.True(t, ok)
	require.Len(t, headers, 1)
	assert.Equal(t, "Authorization: Bearer ***MASKED***", headers[0])
	// Non-string values pass through
	assert.EqualValues(t, 2, row.Metadata["attempt"])
}

func TestRecordWithoutMetadata(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	audit := NewAuditService(client.Client, config.AuditVerbosityLow)

	audit.Record(ctx, "task.created", "task", "task-2", nil)

	count, err := client.AuditLog.Query().
		Where(entauditlog.EventTypeEQ("task.created")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
