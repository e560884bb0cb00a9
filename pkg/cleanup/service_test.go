package cleanup

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/config"
	"github.com/factforge/factforge/pkg/database"
	testdb "github.com/factforge/factforge/test/database"
)

func setupService(t *testing.T) (*database.Client, *audit.Service, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)

	signer, err := audit.NewSigner(bytes.Repeat([]byte("k"), audit.MinKeyBytes))
	require.NoError(t, err)
	auditService := audit.NewService(client.Client, signer)

	cfg := &config.Settings{
		AuditRetentionDays: 365,
		EventTTL:           24 * time.Hour,
		CleanupInterval:    time.Hour,
	}
	return client, auditService, NewService(cfg, client.DB(), auditService, slog.Default())
}

func insertAuditRecord(t *testing.T, client *database.Client, age time.Duration) string {
	t.Helper()
	id := uuid.New().String()
	err := client.AuditRecord.Create().
		SetID(id).
		SetEventType(audit.EventCheck).
		SetPayload(map[string]any{"request_id": id}).
		SetSignature("unverified").
		SetCreatedAt(time.Now().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func insertEventRow(t *testing.T, client *database.Client, age time.Duration) {
	t.Helper()
	_, err := client.DB().ExecContext(context.Background(),
		`INSERT INTO events (target, payload, created_at) VALUES ('all', '{}', $1)`,
		time.Now().Add(-age))
	require.NoError(t, err)
}

func countEventRows(t *testing.T, client *database.Client) int {
	t.Helper()
	var n int
	err := client.DB().QueryRowContext(context.Background(),
		`SELECT count(*) FROM events`).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestServicePurgesOldAuditRecords(t *testing.T) {
	client, auditService, svc := setupService(t)
	ctx := context.Background()

	insertAuditRecord(t, client, 400*24*time.Hour)
	keptID := insertAuditRecord(t, client, time.Hour)

	svc.runAll(ctx)

	records, err := auditService.List(ctx, "", 100, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, keptID, records[0].ID)
}

func TestServiceRemovesExpiredEvents(t *testing.T) {
	client, _, svc := setupService(t)
	ctx := context.Background()

	insertEventRow(t, client, 48*time.Hour)
	insertEventRow(t, client, 10*time.Minute)

	svc.runAll(ctx)

	assert.Equal(t, 1, countEventRows(t, client))
}

func TestServiceKeepsRecentData(t *testing.T) {
	client, auditService, svc := setupService(t)
	ctx := context.Background()

	insertAuditRecord(t, client, time.Minute)
	insertEventRow(t, client, time.Minute)

	svc.runAll(ctx)
	svc.runAll(ctx)

	records, err := auditService.List(ctx, "", 100, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, countEventRows(t, client))
}

func TestServiceStartStop(t *testing.T) {
	client, _, svc := setupService(t)

	insertEventRow(t, client, 48*time.Hour)

	svc.Start(context.Background())
	svc.Start(context.Background()) // second Start is a no-op

	// The first pass runs immediately on Start.
	require.Eventually(t, func() bool {
		return countEventRows(t, client) == 0
	}, 5*time.Second, 50*time.Millisecond)

	svc.Stop()
	svc.Stop()
}
