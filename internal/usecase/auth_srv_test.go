package usecase

import (
	"context"
	"testing"
	"time"

	"care-booking/internal/data/entity"
	"care-booking/internal/data/repository"
	"care-booking/internal/dto/request"
	"care-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByNID(ctx context.Context, nid string) (*entity.User, error) {
	args := m.Called(ctx, nid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepository) CleanExpiredSessions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newAuthService(users *MockUserRepository, sessions *MockSessionRepository) AuthService {
	return newAuthServiceWithBookings(users, sessions, new(MockBookingRepository))
}

func newAuthServiceWithBookings(users *MockUserRepository, sessions *MockSessionRepository, bookings *MockBookingRepository) AuthService {
	repo := &repository.Repository{User: users, Session: sessions, Booking: bookings}
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
	return NewAuthService(repo, config, zap.NewNop())
}

func validRegisterRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     "Rahim Uddin",
		Email:    "rahim@example.com",
		Password: "Sunshine42",
		NID:      "1990123456789",
		Contact:  "01712345678",
	}
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)

	users.On("FindByEmail", mock.Anything, "rahim@example.com").Return(nil, nil)
	users.On("FindByNID", mock.Anything, "1990123456789").Return(nil, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newAuthService(users, sessions)

	resp, err := service.Register(context.Background(), validRegisterRequest())

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token, "register should auto-login")
	assert.Equal(t, "rahim@example.com", resp.Email)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), resp.ExpiresAt, time.Minute)
	users.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)

	existing := &entity.User{Email: "rahim@example.com"}
	users.On("FindByEmail", mock.Anything, "rahim@example.com").Return(existing, nil)

	service := newAuthService(users, sessions)

	_, err := service.Register(context.Background(), validRegisterRequest())

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_NIDTaken(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)

	users.On("FindByEmail", mock.Anything, "rahim@example.com").Return(nil, nil)
	users.On("FindByNID", mock.Anything, "1990123456789").Return(&entity.User{}, nil)

	service := newAuthService(users, sessions)

	_, err := service.Register(context.Background(), validRegisterRequest())

	assert.ErrorIs(t, err, ErrNIDTaken)
}

func TestRegister_WeakPassword(t *testing.T) {
	service := newAuthService(new(MockUserRepository), new(MockSessionRepository))

	req := validRegisterRequest()
	req.Password = "alllowercase"

	_, err := service.Register(context.Background(), req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "password")
}

func TestRegister_MissingFields(t *testing.T) {
	service := newAuthService(new(MockUserRepository), new(MockSessionRepository))

	req := validRegisterRequest()
	req.Email = "not-an-email"

	_, err := service.Register(context.Background(), req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLogin_Success(t *testing.T) {
	hashed, err := utils.HashPassword("Sunshine42")
	assert.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Name:         "Rahim Uddin",
		Email:        "rahim@example.com",
		PasswordHash: hashed,
	}

	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)
	users.On("FindByEmail", mock.Anything, "rahim@example.com").Return(user, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newAuthService(users, sessions)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "rahim@example.com",
		Password: "Sunshine42",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID.String(), resp.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed, err := utils.HashPassword("Sunshine42")
	assert.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "rahim@example.com",
		PasswordHash: hashed,
	}

	users := new(MockUserRepository)
	users.On("FindByEmail", mock.Anything, "rahim@example.com").Return(user, nil)

	service := newAuthService(users, new(MockSessionRepository))

	_, err = service.Login(context.Background(), &request.LoginRequest{
		Email:    "rahim@example.com",
		Password: "WrongPassword1",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	service := newAuthService(users, new(MockSessionRepository))

	_, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Whatever1",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_RevokesSession(t *testing.T) {
	token := uuid.New()

	sessions := new(MockSessionRepository)
	sessions.On("Revoke", mock.Anything, token.String()).Return(nil)

	service := newAuthService(new(MockUserRepository), sessions)

	err := service.Logout(context.Background(), token.String())

	assert.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestLogout_MalformedToken(t *testing.T) {
	service := newAuthService(new(MockUserRepository), new(MockSessionRepository))

	err := service.Logout(context.Background(), "garbage")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestProfile_NotFound(t *testing.T) {
	id := uuid.New()

	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, id).Return(nil, nil)

	service := newAuthService(users, new(MockSessionRepository))

	_, err := service.Profile(context.Background(), id.String())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfile_IncludesBookingCount(t *testing.T) {
	user := &entity.User{
		Base:    entity.Base{ID: uuid.New()},
		Name:    "Rahim Uddin",
		Email:   "rahim@example.com",
		NID:     "1990123456789",
		Contact: "01712345678",
	}

	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	bookings := new(MockBookingRepository)
	bookings.On("CountByUserEmail", mock.Anything, "rahim@example.com").Return(int64(3), nil)

	service := newAuthServiceWithBookings(users, new(MockSessionRepository), bookings)

	resp, err := service.Profile(context.Background(), user.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", resp.Name)
	assert.Equal(t, int64(3), resp.TotalBookings)
}

func TestUpdateProfile_Success(t *testing.T) {
	user := &entity.User{
		Base:    entity.Base{ID: uuid.New()},
		Name:    "Rahim Uddin",
		Email:   "rahim@example.com",
		Contact: "01712345678",
	}

	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	bookings := new(MockBookingRepository)
	bookings.On("CountByUserEmail", mock.Anything, "rahim@example.com").Return(int64(0), nil)

	service := newAuthServiceWithBookings(users, new(MockSessionRepository), bookings)

	resp, err := service.UpdateProfile(context.Background(), user.ID.String(), &request.UpdateProfileRequest{
		Name:    "Rahim U. Khan",
		Contact: "01898765432",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Rahim U. Khan", resp.Name)
	assert.Equal(t, "01898765432", resp.Contact)
	// Identity fields stay fixed
	assert.Equal(t, "rahim@example.com", resp.Email)
	users.AssertExpectations(t)
}

func TestUpdateProfile_MissingFields(t *testing.T) {
	service := newAuthService(new(MockUserRepository), new(MockSessionRepository))

	_, err := service.UpdateProfile(context.Background(), uuid.NewString(), &request.UpdateProfileRequest{
		Name: "R",
	})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
