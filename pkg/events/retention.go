package events

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DeleteOlderThan removes persisted event rows past their TTL. Live clients
// consume NOTIFY traffic as it happens, so expired rows are pure history and
// safe to drop from any pod.
func DeleteOlderThan(ctx context.Context, db *sql.DB, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, fmt.Errorf("event ttl must be positive, got %s", ttl)
	}
	cutoff := time.Now().Add(-ttl)
	res, err := db.ExecContext(ctx, `DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete expired events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted events: %w", err)
	}
	return n, nil
}
