package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ekinokr/eventmate-backend/internal/models"
	"github.com/ekinokr/eventmate-backend/pkg/bcrypt"
	"github.com/ekinokr/eventmate-backend/pkg/jwt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	// Aynı mesaj: hangi alanın yanlış olduğunu sızdırma.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserRepository is the credential store. GetByEmail and GetByID return
// (nil, nil) when no document matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type AuthService struct {
	userRepo UserRepository
	tokens   *jwt.TokenService
}

func NewAuthService(userRepo UserRepository, tokens *jwt.TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleUser,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	return s.tokens.GenerateToken(created.ID.Hex(), string(created.Role))
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.GenerateToken(user.ID.Hex(), string(user.Role))
}
