package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeleteOlderThanRejectsNonPositiveTTL(t *testing.T) {
	_, err := DeleteOlderThan(context.Background(), nil, 0)
	require.Error(t, err)

	_, err = DeleteOlderThan(context.Background(), nil, -1)
	require.Error(t, err)
}
