package user

import (
	"context"
	"errors"
	"myMiloStore/domain"
	"myMiloStore/pkg/logger"
	"myMiloStore/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

type userService struct {
	userRepo UserRepository
	validate *validator.Validate
}

func NewUserService(userRepo UserRepository, validate *validator.Validate) *userService {
	return &userService{
		userRepo: userRepo,
		validate: validate,
	}
}

// Register creates an account. The only business failure is a taken username;
// passwords are hashed at rest, the register/login contract is unaffected.
func (s *userService) Register(ctx context.Context, username, password string) (domain.User, error) {
	if err := s.validate.Var(username, "required"); err != nil {
		logger.Error("Missing username", err)
		return domain.User{}, errors.New("username is required")
	}

	if err := s.validate.Var(password, "required"); err != nil {
		logger.Error("Missing password", err)
		return domain.User{}, errors.New("password is required")
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		Username: username,
		Password: passwordHash,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	return newUser, nil
}

// Authenticate matches the username exactly (case-sensitive) and compares the
// password against the stored hash. Unknown user and wrong password are not
// distinguished to the caller.
func (s *userService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidLogin
		}
		logger.Error("Failed to find user", err)
		return domain.User{}, err
	}

	if !utils.CheckPassword(password, user.Password) {
		return domain.User{}, domain.ErrInvalidLogin
	}

	return user, nil
}
