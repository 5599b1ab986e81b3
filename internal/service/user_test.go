package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/auth"
	"github.com/issuetrackhq/issuetrack/internal/domain"
	"github.com/issuetrackhq/issuetrack/internal/mocks"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newUserService(ctrl *gomock.Controller) (
	*service.UserService,
	*mocks.MockUserRepositoryIface,
	*mocks.MockAuditLogRepositoryIface,
) {
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	auditRepo := mocks.NewMockAuditLogRepositoryIface(ctrl)

	audit := service.NewAuditService(auditRepo, userRepo)
	svc := service.NewUserService(
		userRepo,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test_secret", time.Hour),
		audit,
	)

	return svc, userRepo, auditRepo
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("registers with the default engineer role", func(t *testing.T) {
		svc, userRepo, auditRepo := newUserService(ctrl)

		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)
		auditRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		out, err := svc.Register(context.Background(), service.RegisterInput{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "correct horse battery",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.RoleEngineer, out.User.Role)
		assert.NotEmpty(t, out.Token)
		assert.NotEqual(t, "correct horse battery", out.User.PasswordHash)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		svc, _, _ := newUserService(ctrl)

		_, err := svc.Register(context.Background(), service.RegisterInput{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "short",
		})

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		svc, _, _ := newUserService(ctrl)

		_, err := svc.Register(context.Background(), service.RegisterInput{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "correct horse battery",
			Role:     "SUPERUSER",
		})

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})

	t.Run("surfaces the conflict on a duplicate email", func(t *testing.T) {
		svc, userRepo, _ := newUserService(ctrl)

		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.Conflict("email is already registered"))

		_, err := svc.Register(context.Background(), service.RegisterInput{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "correct horse battery",
		})

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindConflict))
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hash, _ := hasher.Hash("correct_password")

	user := &model.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: hash,
		Role:         model.RoleManager,
		IsActive:     true,
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		svc, userRepo, _ := newUserService(ctrl)

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), user.Email).
			Return(user, nil)

		out, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "correct_password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, user.ID, out.User.ID)
	})

	t.Run("wrong password fails unauthorized", func(t *testing.T) {
		svc, userRepo, _ := newUserService(ctrl)

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), user.Email).
			Return(user, nil)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "wrong_password",
		})

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
	})

	t.Run("unknown email folds into the same unauthorized error", func(t *testing.T) {
		svc, userRepo, _ := newUserService(ctrl)

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, domain.NotFound("user not found"))

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever_password",
		})

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
	})

	t.Run("inactive accounts are forbidden", func(t *testing.T) {
		svc, userRepo, _ := newUserService(ctrl)

		inactive := *user
		inactive.IsActive = false

		userRepo.EXPECT().
			FindByEmail(gomock.Any(), user.Email).
			Return(&inactive, nil)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "correct_password",
		})

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}
