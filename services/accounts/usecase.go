package accounts

import (
	"context"

	"github.com/google/uuid"

	"github.com/sgcab/dispatch/internal/pkg/models"
)

// AccountUC defines staff account operations. Provisioning generates the
// staff code, email and password server side; deactivation is the only way
// an actor leaves, so their financial history stays intact.
//
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sgcab/dispatch/services/accounts AccountUC
type AccountUC interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Provision(ctx context.Context, auth models.AuthContext, req models.ProvisionRequest) (*models.ProvisionedAccount, error)
	GetActor(ctx context.Context, actorID uuid.UUID) (*models.Actor, error)
	ListActorsByRole(ctx context.Context, auth models.AuthContext, role string) ([]models.Actor, error)
	Deactivate(ctx context.Context, auth models.AuthContext, actorID uuid.UUID) error
}

// PasswordHasher abstracts credential hashing so tests can swap the real
// bcrypt cost out.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}
