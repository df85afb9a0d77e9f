package accounts

import (
	"context"

	"github.com/google/uuid"

	"github.com/sgcab/dispatch/internal/pkg/models"
)

// AccountRepo defines data access for staff accounts. The password hash is
// passed alongside the actor on create and never read back out.
//
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sgcab/dispatch/services/accounts AccountRepo
type AccountRepo interface {
	CreateActor(ctx context.Context, actor *models.Actor, passwordHash string) error
	GetActor(ctx context.Context, actorID uuid.UUID) (*models.Actor, error)
	GetActorCredentials(ctx context.Context, email string) (*models.Actor, string, error)
	ListActorsByRole(ctx context.Context, role string) ([]models.Actor, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CountActorsByRole(ctx context.Context, role string) (int, error)
	DeactivateActor(ctx context.Context, actorID uuid.UUID) error

	CreateDriver(ctx context.Context, driver *models.Driver) error
	GetDriverByActorID(ctx context.Context, actorID uuid.UUID) (*models.Driver, error)
}
