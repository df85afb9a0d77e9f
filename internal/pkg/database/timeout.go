package database

import (
	"context"
	"time"

	"github.com/sgcab/dispatch/internal/pkg/models"
)

// StoreContext bounds a store call with the configured store timeout, in
// seconds. A non-positive timeout leaves the caller's context untouched.
func StoreContext(ctx context.Context, cfg *models.Config) (context.Context, context.CancelFunc) {
	timeout := time.Duration(cfg.Server.StoreTimeout) * time.Second
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
