package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ekinokr/eventmate-backend/internal/models"
	"github.com/ekinokr/eventmate-backend/pkg/jwt"
)

// mockUserRepository is a map-backed UserRepository.
type mockUserRepository struct {
	users map[primitive.ObjectID]*models.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users: make(map[primitive.ObjectID]*models.User),
	}
}

func (r *mockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	r.users[user.ID] = user
	return user, nil
}

func (r *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.users[id], nil
}

func (r *mockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	u, _ := r.GetByEmail(ctx, email)
	return u != nil, nil
}

func newTestAuthService() (*AuthService, *mockUserRepository, *jwt.TokenService) {
	repo := newMockUserRepository()
	tokens := jwt.NewTokenService("test-secret")
	return NewAuthService(repo, tokens), repo, tokens
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, repo, tokens := newTestAuthService()

	token, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.User.Role)

	stored, err := repo.GetByEmail(context.Background(), "ayse@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID.Hex(), claims.User.ID)
	assert.NotEqual(t, "secret123", stored.Password, "password must be stored hashed")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	req := models.RegisterRequest{Name: "Ayşe Yılmaz", Email: "ayse@example.com", Password: "secret123"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLoginSuccess(t *testing.T) {
	svc, _, tokens := newTestAuthService()

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Mehmet Demir",
		Email:    "mehmet@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "mehmet@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = tokens.ValidateToken(token)
	assert.NoError(t, err)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Mehmet Demir",
		Email:    "mehmet@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, wrongPassErr := svc.Login(context.Background(), models.LoginRequest{
		Email:    "mehmet@example.com",
		Password: "nope",
	})
	_, unknownEmailErr := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmailErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownEmailErr.Error())
}
