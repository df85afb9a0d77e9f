package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/jwt"
	"github.com/sgcab/dispatch/internal/pkg/logger"
	"github.com/sgcab/dispatch/internal/pkg/models"
)

// Login verifies staff credentials and issues a session token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (uc *accountUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", errs.ErrValidation)
	}

	actor, hash, err := uc.accountRepo.GetActorCredentials(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthenticated)
		}
		return nil, err
	}

	if !actor.Active {
		return nil, fmt.Errorf("%w: account is deactivated", errs.ErrUnauthenticated)
	}
	if err := uc.hasher.Compare(hash, req.Password); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthenticated)
	}

	token, expiresAt, err := jwt.GenerateToken(actor.ID, actor.Role, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("Staff logged in", logrus.Fields{
		"actor_id": actor.ID,
		"role":     actor.Role,
	})

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Actor:     actor,
	}, nil
}
