package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/services/accounts/mocks"
)

var testNow = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

// plainHasher keeps provisioning tests fast and lets them see the plaintext
// that was hashed.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func newTestAccountUC(t *testing.T) (*mocks.MockAccountRepo, *accountUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	cfg := &models.Config{Accounts: models.AccountsConfig{EmailDomain: "sc.local"}}
	uc := NewAccountUC(cfg, models.FixedClock{T: testNow}, mockRepo, plainHasher{}).(*accountUC)
	return mockRepo, uc
}

func adminAuth() models.AuthContext {
	return models.AuthContext{ActorID: uuid.New(), Role: models.RoleAdmin}
}

func TestProvision_SalesAccount(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestAccountUC(t)

	mockRepo.EXPECT().CountActorsByRole(gomock.Any(), models.RoleSales).Return(4, nil)
	mockRepo.EXPECT().EmailExists(gomock.Any(), "nguyenvanan05@sc.local").Return(false, nil)
	mockRepo.EXPECT().
		CreateActor(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, actor *models.Actor, hash string) error {
			assert.Equal(t, "nguyenvanan05", actor.StaffCode)
			assert.Equal(t, "nguyenvanan05@sc.local", actor.Email)
			assert.Equal(t, models.RoleSales, actor.Role)
			assert.Equal(t, models.DefaultSalesRate, actor.CommissionRate)
			assert.True(t, actor.Active)
			assert.Equal(t, testNow, actor.CreatedAt)
			assert.Regexp(t, regexp.MustCompile(`^hashed:Sale@\d{4}$`), hash)
			return nil
		})

	// Act
	account, err := uc.Provision(context.Background(), adminAuth(), models.ProvisionRequest{
		FullName: "Nguyễn Văn An",
		Role:     models.RoleSales,
	})

	// Assert
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^Sale@\d{4}$`), account.Password)
	assert.Nil(t, account.Driver)
}

func TestProvision_DriverGetsProfile(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestAccountUC(t)

	mockRepo.EXPECT().CountActorsByRole(gomock.Any(), models.RoleDriver).Return(0, nil)
	mockRepo.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(false, nil)

	var createdActor *models.Actor
	mockRepo.EXPECT().
		CreateActor(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, actor *models.Actor, hash string) error {
			createdActor = actor
			return nil
		})
	mockRepo.EXPECT().
		CreateDriver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, driver *models.Driver) error {
			assert.Equal(t, createdActor.ID, driver.ActorID)
			assert.Equal(t, "59-B1 12345", driver.LicenseNo)
			return nil
		})

	// Act
	account, err := uc.Provision(context.Background(), adminAuth(), models.ProvisionRequest{
		FullName:  "Trần Bảo",
		Role:      models.RoleDriver,
		LicenseNo: "59-B1 12345",
	})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, account.Driver)
	assert.Equal(t, models.DefaultDriverRate, account.Actor.CommissionRate)
	assert.Regexp(t, regexp.MustCompile(`^Driver@\d{4}$`), account.Password)
}

func TestProvision_EmailCollisionAppendsSuffix(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestAccountUC(t)

	mockRepo.EXPECT().CountActorsByRole(gomock.Any(), models.RoleSales).Return(0, nil)
	mockRepo.EXPECT().EmailExists(gomock.Any(), "le01@sc.local").Return(true, nil)
	mockRepo.EXPECT().EmailExists(gomock.Any(), "le011@sc.local").Return(false, nil)
	mockRepo.EXPECT().
		CreateActor(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, actor *models.Actor, hash string) error {
			assert.Equal(t, "le011@sc.local", actor.Email)
			assert.Equal(t, "le01", actor.StaffCode)
			return nil
		})

	// Act
	_, err := uc.Provision(context.Background(), adminAuth(), models.ProvisionRequest{
		FullName: "Lê",
		Role:     models.RoleSales,
	})

	// Assert
	require.NoError(t, err)
}

func TestProvision_NotManager(t *testing.T) {
	_, uc := newTestAccountUC(t)

	account, err := uc.Provision(context.Background(),
		models.AuthContext{ActorID: uuid.New(), Role: models.RoleSales},
		models.ProvisionRequest{FullName: "X", Role: models.RoleSales})

	assert.Nil(t, account)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestProvision_RejectsBackOfficeRole(t *testing.T) {
	_, uc := newTestAccountUC(t)

	account, err := uc.Provision(context.Background(), adminAuth(),
		models.ProvisionRequest{FullName: "X", Role: models.RoleAdmin})

	assert.Nil(t, account)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestDeactivate_Success(t *testing.T) {
	// Arrange
	mockRepo, uc := newTestAccountUC(t)
	auth := adminAuth()
	actorID := uuid.New()

	mockRepo.EXPECT().DeactivateActor(gomock.Any(), actorID).Return(nil)

	// Act / Assert
	assert.NoError(t, uc.Deactivate(context.Background(), auth, actorID))
}

func TestDeactivate_SelfIsRejected(t *testing.T) {
	_, uc := newTestAccountUC(t)
	auth := adminAuth()

	err := uc.Deactivate(context.Background(), auth, auth.ActorID)

	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestListActorsByRole_RequiresBackOffice(t *testing.T) {
	_, uc := newTestAccountUC(t)

	_, err := uc.ListActorsByRole(context.Background(),
		models.AuthContext{ActorID: uuid.New(), Role: models.RoleDriver}, models.RoleDriver)

	assert.ErrorIs(t, err, errs.ErrForbidden)
}
