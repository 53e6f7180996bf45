package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fieldcrm/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64) (string, error) { return "token", nil }

func hashOf(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h)
}

func TestRegister_NewUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	s := NewService(users, stubJWT{})
	result, err := s.Register(context.Background(), RegisterRequest{
		Email:    "New@Example.com ",
		Password: "secret123",
		Name:     "New User",
	})
	assert.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	assert.Equal(t, "new@example.com", result.User.Email)
	assert.Empty(t, result.User.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	s := NewService(users, stubJWT{})
	_, err := s.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "test@example.com").Return(&domain.User{
		ID:           1,
		Email:        "test@example.com",
		PasswordHash: hashOf("test123"),
	}, nil)

	s := NewService(users, stubJWT{})
	result, err := s.Login(context.Background(), LoginRequest{
		Email:    "test@example.com",
		Password: "test123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "token", result.Token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	s := NewService(users, stubJWT{})
	_, err := s.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPasswordCountsAttempt(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "test@example.com").Return(&domain.User{
		ID:           1,
		Email:        "test@example.com",
		PasswordHash: hashOf("test123"),
	}, nil)
	users.On("UpdateFields", mock.Anything, int64(1), mock.MatchedBy(func(fields map[string]any) bool {
		return fields["failed_login_attempts"] == 1
	})).Return(nil)

	s := NewService(users, stubJWT{})
	_, err := s.Login(context.Background(), LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	users.AssertExpectations(t)
}

func TestLogin_FifthFailureLocksAccount(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "test@example.com").Return(&domain.User{
		ID:                  1,
		Email:               "test@example.com",
		PasswordHash:        hashOf("test123"),
		FailedLoginAttempts: 4,
	}, nil)
	users.On("UpdateFields", mock.Anything, int64(1), mock.MatchedBy(func(fields map[string]any) bool {
		_, locked := fields["locked_until"]
		return fields["failed_login_attempts"] == 5 && locked
	})).Return(nil)

	s := NewService(users, stubJWT{})
	_, err := s.Login(context.Background(), LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLogin_LockedAccountRejected(t *testing.T) {
	until := time.Now().Add(10 * time.Minute)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "test@example.com").Return(&domain.User{
		ID:           1,
		Email:        "test@example.com",
		PasswordHash: hashOf("test123"),
		LockedUntil:  &until,
	}, nil)

	s := NewService(users, stubJWT{})
	_, err := s.Login(context.Background(), LoginRequest{
		Email:    "test@example.com",
		Password: "test123",
	})
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLogin_ExpiredLockClearsCounters(t *testing.T) {
	until := time.Now().Add(-time.Minute)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "test@example.com").Return(&domain.User{
		ID:                  1,
		Email:               "test@example.com",
		PasswordHash:        hashOf("test123"),
		FailedLoginAttempts: 5,
		LockedUntil:         &until,
	}, nil)
	users.On("UpdateFields", mock.Anything, int64(1), mock.MatchedBy(func(fields map[string]any) bool {
		return fields["failed_login_attempts"] == 0
	})).Return(nil)

	s := NewService(users, stubJWT{})
	result, err := s.Login(context.Background(), LoginRequest{
		Email:    "test@example.com",
		Password: "test123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	users.AssertExpectations(t)
}

func TestGetCurrentUser_MissingIsNotFound(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	s := NewService(users, stubJWT{})
	_, err := s.GetCurrentUser(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}
