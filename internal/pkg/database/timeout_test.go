package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgcab/dispatch/internal/pkg/models"
)

func TestStoreContext_AppliesConfiguredDeadline(t *testing.T) {
	cfg := &models.Config{Server: models.ServerConfig{StoreTimeout: 5}}

	ctx, cancel := StoreContext(context.Background(), cfg)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
}

func TestStoreContext_ZeroTimeoutLeavesContextUnbounded(t *testing.T) {
	cfg := &models.Config{Server: models.ServerConfig{StoreTimeout: 0}}

	ctx, cancel := StoreContext(context.Background(), cfg)
	defer cancel()

	_, ok := ctx.Deadline()
	assert.False(t, ok)
}

func TestStoreContext_KeepsEarlierParentDeadline(t *testing.T) {
	cfg := &models.Config{Server: models.ServerConfig{StoreTimeout: 60}}

	parent, parentCancel := context.WithTimeout(context.Background(), time.Second)
	defer parentCancel()

	ctx, cancel := StoreContext(parent, cfg)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
}
