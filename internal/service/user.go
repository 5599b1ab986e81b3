// internal/service/user.go
package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/issuetrackhq/issuetrack/internal/auth"
	"github.com/issuetrackhq/issuetrack/internal/domain"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/pagination"
	"github.com/issuetrackhq/issuetrack/internal/repository"
)

// UserService covers registration and login. Credential verification lives
// here, outside the tenant-access core: the core only ever sees an
// authenticated principal.
type UserService struct {
	users    repository.UserRepositoryIface
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	audit    *AuditService
	validate *validator.Validate
}

func NewUserService(
	users repository.UserRepositoryIface,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	audit *AuditService,
) *UserService {
	return &UserService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		audit:    audit,
		validate: validator.New(),
	}
}

type RegisterInput struct {
	Name     string         `json:"name" validate:"required"`
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required,min=8"`
	Role     model.UserRole `json:"role"`
}

type AuthOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.BadRequest("name, email and a password of at least 8 characters are required")
	}

	if input.Role == "" {
		input.Role = model.RoleEngineer
	}
	if !input.Role.Valid() {
		return nil, domain.BadRequestf("invalid role %q", input.Role)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionUserRegistered,
		EntityType:  model.EntityUser,
		EntityID:    user.ID,
		PerformedBy: user.ID,
		NewValue:    model.JSONMap{"email": user.Email, "role": string(user.Role)},
	})

	token, err := s.tokens.Generate(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.Unauthorized("invalid email or password")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.Forbidden("user account is inactive")
	}

	verified, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.Unauthorized("invalid email or password")
	}

	token, err := s.tokens.Generate(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthOutput{User: user, Token: token}, nil
}

func (s *UserService) ListUsers(ctx context.Context, params pagination.Params) (pagination.Page[*model.User], error) {
	users, total, err := s.users.FindAllPaginated(ctx, params.Offset(), params.Limit)
	if err != nil {
		return pagination.Page[*model.User]{}, err
	}
	return pagination.NewPage(users, params, total), nil
}
