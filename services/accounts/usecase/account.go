package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/logger"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/internal/utils"
	"github.com/sgcab/dispatch/services/accounts"
)

type accountUC struct {
	cfg         *models.Config
	clock       models.Clock
	accountRepo accounts.AccountRepo
	hasher      accounts.PasswordHasher
}

// NewAccountUC creates a new account usecase
func NewAccountUC(
	cfg *models.Config,
	clock models.Clock,
	accountRepo accounts.AccountRepo,
	hasher accounts.PasswordHasher,
) accounts.AccountUC {
	return &accountUC{
		cfg:         cfg,
		clock:       clock,
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

// Provision creates a staff account with generated credentials. Only sales
// and driver roles are provisioned this way; back office accounts are seeded
// out of band.
func (uc *accountUC) Provision(ctx context.Context, auth models.AuthContext, req models.ProvisionRequest) (*models.ProvisionedAccount, error) {
	if !auth.CanManageStaff() {
		return nil, fmt.Errorf("%w: only admins and managers may provision staff", errs.ErrForbidden)
	}
	if req.Role != models.RoleSales && req.Role != models.RoleDriver {
		return nil, fmt.Errorf("%w: role must be sales or driver", errs.ErrValidation)
	}
	if req.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", errs.ErrValidation)
	}

	staffCode, email, err := uc.generateIdentity(ctx, req.FullName, req.Role)
	if err != nil {
		return nil, err
	}

	password, err := generatePassword(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate password: %v", errs.ErrStorage, err)
	}
	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password: %v", errs.ErrStorage, err)
	}

	rate := req.CommissionRate
	if rate <= 0 {
		if req.Role == models.RoleDriver {
			rate = models.DefaultDriverRate
		} else {
			rate = models.DefaultSalesRate
		}
	}

	actor := &models.Actor{
		ID:             uuid.New(),
		Email:          email,
		StaffCode:      staffCode,
		FullName:       req.FullName,
		Role:           req.Role,
		CommissionRate: rate,
		Active:         true,
		CreatedAt:      uc.clock.Now(),
	}

	if err := uc.accountRepo.CreateActor(ctx, actor, hash); err != nil {
		return nil, err
	}

	account := &models.ProvisionedAccount{
		Actor:    actor,
		Password: password,
	}

	if req.Role == models.RoleDriver {
		driver := &models.Driver{
			ID:        uuid.New(),
			ActorID:   actor.ID,
			LicenseNo: req.LicenseNo,
		}
		if err := uc.accountRepo.CreateDriver(ctx, driver); err != nil {
			return nil, err
		}
		account.Driver = driver
	}

	logger.Info("Staff account provisioned", logrus.Fields{
		"actor_id":   actor.ID,
		"staff_code": actor.StaffCode,
		"role":       actor.Role,
	})
	return account, nil
}

// GetActor returns one actor.
func (uc *accountUC) GetActor(ctx context.Context, actorID uuid.UUID) (*models.Actor, error) {
	return uc.accountRepo.GetActor(ctx, actorID)
}

// ListActorsByRole returns all actors with a role for staff management and
// report drill downs.
func (uc *accountUC) ListActorsByRole(ctx context.Context, auth models.AuthContext, role string) ([]models.Actor, error) {
	if !auth.CanManageStaff() && !auth.CanViewReports() {
		return nil, fmt.Errorf("%w: staff listing requires back office access", errs.ErrForbidden)
	}
	return uc.accountRepo.ListActorsByRole(ctx, role)
}

// Deactivate retires an actor without touching their trips or payments.
func (uc *accountUC) Deactivate(ctx context.Context, auth models.AuthContext, actorID uuid.UUID) error {
	if !auth.CanManageStaff() {
		return fmt.Errorf("%w: only admins and managers may deactivate staff", errs.ErrForbidden)
	}
	if actorID == auth.ActorID {
		return fmt.Errorf("%w: cannot deactivate your own account", errs.ErrValidation)
	}

	if err := uc.accountRepo.DeactivateActor(ctx, actorID); err != nil {
		return err
	}

	logger.Info("Staff account deactivated", logrus.Fields{
		"actor_id": actorID,
		"by":       auth.ActorID,
	})
	return nil
}

// generateIdentity derives the staff code from the person's name and an
// ordinal within their role, then finds a free email under the org domain.
func (uc *accountUC) generateIdentity(ctx context.Context, fullName, role string) (string, string, error) {
	count, err := uc.accountRepo.CountActorsByRole(ctx, role)
	if err != nil {
		return "", "", err
	}
	staffCode := fmt.Sprintf("%s%02d", utils.SlugifyName(fullName), count+1)

	domain := uc.cfg.Accounts.EmailDomain
	email := fmt.Sprintf("%s@%s", staffCode, domain)
	for idx := 1; ; idx++ {
		taken, err := uc.accountRepo.EmailExists(ctx, email)
		if err != nil {
			return "", "", err
		}
		if !taken {
			break
		}
		email = fmt.Sprintf("%s%d@%s", staffCode, idx, domain)
	}

	return staffCode, email, nil
}

func generatePassword(role string) (string, error) {
	prefix := "User"
	switch role {
	case models.RoleSales:
		prefix = "Sale"
	case models.RoleDriver:
		prefix = "Driver"
	}

	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s@%d", prefix, n.Int64()+1000), nil
}
