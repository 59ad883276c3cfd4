package user

import (
	"context"
	"testing"

	"food-delivery-backend/domain"
	"food-delivery-backend/entities"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) UpdateCart(ctx context.Context, userID string, cart entities.CartData) error {
	args := m.Called(ctx, userID, cart)
	return args.Error(0)
}

type stubJWTService struct{}

func (stubJWTService) GenerateTokenUser(userId string, role string) string { return "token-" + userId }
func (stubJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, nil
}
func (stubJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

func TestRegister(t *testing.T) {
	t.Run("creates user with hashed password and empty cart", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo, stubJWTService{})

		repo.On("GetUserByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)

		var created *entities.User
		repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*entities.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*entities.User)
			}).Return(nil)

		res, err := svc.Register(context.Background(), domain.RegisterRequest{
			Name:     "Test User",
			Email:    "new@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		require.NotEmpty(t, res.Token)

		require.NotNil(t, created)
		require.NotEqual(t, "password123", created.Password)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
		require.Empty(t, created.CartData)
		require.Equal(t, domain.RoleUser, created.Role)
	})

	t.Run("rejects short password", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo, stubJWTService{})

		_, err := svc.Register(context.Background(), domain.RegisterRequest{
			Name:     "Test User",
			Email:    "new@example.com",
			Password: "short",
		})
		require.ErrorIs(t, err, domain.ErrWeakPassword)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("rejects existing email", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo, stubJWTService{})

		repo.On("GetUserByEmail", mock.Anything, "taken@example.com").
			Return(&entities.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

		_, err := svc.Register(context.Background(), domain.RegisterRequest{
			Name:     "Test User",
			Email:    "taken@example.com",
			Password: "password123",
		})
		require.ErrorIs(t, err, domain.ErrUserAlreadyExists)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	existing := &entities.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo, stubJWTService{})

		repo.On("GetUserByEmail", mock.Anything, "test@example.com").Return(existing, nil)

		res, err := svc.Login(context.Background(), domain.LoginRequest{
			Email:    "test@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		require.Equal(t, "token-"+existing.ID.String(), res.Token)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo, stubJWTService{})

		repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(context.Background(), domain.LoginRequest{
			Email:    "ghost@example.com",
			Password: "password123",
		})
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc := NewUserService(repo, stubJWTService{})

		repo.On("GetUserByEmail", mock.Anything, "test@example.com").Return(existing, nil)

		_, err := svc.Login(context.Background(), domain.LoginRequest{
			Email:    "test@example.com",
			Password: "wrongpassword",
		})
		require.ErrorIs(t, err, domain.ErrCredentialsWrong)
	})
}
