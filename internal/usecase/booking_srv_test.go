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

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByUserEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountByUserEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, updatedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, from, to, updatedAt)
	return args.Bool(0), args.Error(1)
}

// recordingNotifier captures dispatched emails on a channel so tests can
// wait for the async send without racing it.
type recordingNotifier struct {
	statusUpdates chan entity.BookingStatus
	invoices      chan string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{
		statusUpdates: make(chan entity.BookingStatus, 4),
		invoices:      make(chan string, 4),
	}
}

func (n *recordingNotifier) SendStatusUpdate(_ context.Context, booking *entity.Booking, newStatus entity.BookingStatus) error {
	n.statusUpdates <- newStatus
	return nil
}

func (n *recordingNotifier) SendInvoice(_ context.Context, booking *entity.Booking) error {
	n.invoices <- booking.ID.String()
	return nil
}

func (n *recordingNotifier) waitStatusUpdate(t *testing.T) entity.BookingStatus {
	t.Helper()
	select {
	case status := <-n.statusUpdates:
		return status
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for status update email")
		return ""
	}
}

// Test fixtures

func newTestService(bookings *MockBookingRepository) (BookingService, *recordingNotifier) {
	repo := &repository.Repository{Booking: bookings}
	config := &utils.Config{
		Admin: utils.AdminConfig{Emails: []string{"admin@care.xyz"}},
	}
	notifier := newRecordingNotifier()

	return NewBookingService(repo, config, notifier, zap.NewNop()), notifier
}

func customerActor() Actor {
	return Actor{
		ID:    uuid.NewString(),
		Email: "rahim@example.com",
		Name:  "Rahim Uddin",
	}
}

func adminActor() Actor {
	return Actor{
		ID:    uuid.NewString(),
		Email: "admin@care.xyz",
		Name:  "Admin",
	}
}

func validCreateRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		ServiceID:    "baby-care",
		ServiceName:  "Baby Care",
		Duration:     4,
		DurationUnit: "hours",
		Location: request.BookingLocation{
			Division: "Dhaka",
			District: "Dhaka",
			City:     "Dhaka",
			Area:     "Uttara",
			Address:  "House 12, Road 3, Uttara",
		},
		TotalCost: 2000, // 500/hr * 4h
	}
}

func pendingBooking(owner Actor) *entity.Booking {
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ServiceID:    "baby-care",
		ServiceName:  "Baby Care",
		Duration:     4,
		DurationUnit: entity.DurationUnitHours,
		Location: entity.Location{
			Division: "Dhaka",
			District: "Dhaka",
			City:     "Dhaka",
			Area:     "Uttara",
			Address:  "House 12, Road 3, Uttara",
		},
		TotalCost: 2000,
		Status:    entity.BookingStatusPending,
		UserID:    owner.ID,
		UserEmail: owner.Email,
		UserName:  owner.Name,
	}
}

// CreateBooking

func TestCreateBooking_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service, _ := newTestService(bookings)
	actor := customerActor()

	booking, err := service.CreateBooking(context.Background(), actor, validCreateRequest())

	assert.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, 2000.0, booking.TotalCost)
	assert.Equal(t, actor.Email, booking.UserEmail)
	bookings.AssertExpectations(t)
}

func TestCreateBooking_DayRateUsesEightHourDays(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service, _ := newTestService(bookings)

	req := validCreateRequest()
	req.Duration = 2
	req.DurationUnit = "days"
	req.TotalCost = 8000 // 500/hr * 2d * 8h

	booking, err := service.CreateBooking(context.Background(), customerActor(), req)

	assert.NoError(t, err)
	assert.Equal(t, 8000.0, booking.TotalCost)
}

func TestCreateBooking_UnknownService(t *testing.T) {
	service, _ := newTestService(new(MockBookingRepository))

	req := validCreateRequest()
	req.ServiceID = "pet-care"

	_, err := service.CreateBooking(context.Background(), customerActor(), req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "service_id")
}

func TestCreateBooking_CostMismatch(t *testing.T) {
	service, _ := newTestService(new(MockBookingRepository))

	req := validCreateRequest()
	req.TotalCost = 1 // client-side tampering

	_, err := service.CreateBooking(context.Background(), customerActor(), req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "total_cost")
}

func TestCreateBooking_AreaNotCovered(t *testing.T) {
	service, _ := newTestService(new(MockBookingRepository))

	req := validCreateRequest()
	req.Location.Area = "Atlantis"

	_, err := service.CreateBooking(context.Background(), customerActor(), req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "location")
}

func TestCreateBooking_MissingFields(t *testing.T) {
	service, _ := newTestService(new(MockBookingRepository))

	req := validCreateRequest()
	req.DurationUnit = "weeks"

	_, err := service.CreateBooking(context.Background(), customerActor(), req)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

// UpdateStatus: admin transitions

func TestUpdateStatus_AdminConfirmsPending(t *testing.T) {
	owner := customerActor()
	booking := pendingBooking(owner)

	bookings := new(MockBookingRepository)
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	bookings.On("UpdateStatusFrom", mock.Anything, booking.ID,
		entity.BookingStatusPending, entity.BookingStatusConfirmed, mock.Anything).Return(true, nil)

	service, notifier := newTestService(bookings)

	updated, err := service.UpdateStatus(context.Background(), adminActor(), booking.ID.String(), entity.BookingStatusConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, entity.BookingStatusConfirmed, notifier.waitStatusUpdate(t))
	bookings.AssertExpectations(t)
}

func TestUpdateStatus_AdminCompletesConfirmed(t *testing.T) {
	booking := pendingBooking(customerActor())
	booking.Status = entity.BookingStatusConfirmed

	bookings := new(MockBookingRepository)
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	bookings.On("UpdateStatusFrom", mock.Anything, booking.ID,
		entity.BookingStatusConfirmed, entity.BookingStatusCompleted, mock.Anything).Return(true, nil)

	service, notifier := newTestService(bookings)

	updated, err := service.UpdateStatus(context.Background(), adminActor(), booking.ID.String(), entity.BookingStatusCompleted)

	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, updated.Status)
	assert.Equal(t, entity.BookingStatusCompleted, notifier.waitStatusUpdate(t))
}

func TestUpdateStatus_AdminCannotSkipToCompleted(t *testing.T) {
	booking := pendingBooking(customerActor())

	bookings := new(MockBookingRepository)
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	service, _ := newTestService(bookings)

	_, err := service.UpdateStatus(context.Background(), adminActor(), booking.ID.String(), entity.BookingStatusCompleted)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_TerminalStatesAreFrozen(t *testing.T) {
	owner := customerActor()

	for _, terminal := range []entity.BookingStatus{entity.BookingStatusCompleted, entity.BookingStatusCancelled} {
		for _, target := range []entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.BookingStatusCancelled} {
			booking := pendingBooking(owner)
			booking.Status = terminal

			bookings := new(MockBookingRepository)
			bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

			service, _ := newTestService(bookings)

			// Terminal bookings conflict for every actor, including the
			// owner, even when the target would otherwise be off-limits
			// to them.
			_, err := service.UpdateStatus(context.Background(), adminActor(), booking.ID.String(), target)
			assert.ErrorIs(t, err, ErrInvalidTransition, "admin: %s -> %s", terminal, target)

			_, err = service.UpdateStatus(context.Background(), owner, booking.ID.String(), target)
			assert.ErrorIs(t, err, ErrInvalidTransition, "owner: %s -> %s", terminal, target)
		}
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	id := uuid.New()

	bookings := new(MockBookingRepository)
	bookings.On("FindByID", mock.Anything, id).Return(nil, nil)

	service, _ := newTestService(bookings)

	_, err := service.UpdateStatus(context.Background(), adminActor(), id.String(), entity.BookingStatusConfirmed)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatus_InvalidID(t *testing.T) {
	service, _ := newTestService(new(MockBookingRepository))

	_, err := service.UpdateStatus(context.Background(), adminActor(), "not-a-uuid", entity.BookingStatusConfirmed)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

// UpdateStatus: customer restrictions

func TestUpdateStatus_CustomerCannotConfirm(t *testing.T) {
	owner := customerActor()
	booking := pendingBooking(owner)

	bookings := new(MockBookingRepository)
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	service, _ := newTestService(bookings)

	_, err := service.UpdateStatus(context.Background(), owner, booking.ID.String(), entity.BookingStatusConfirmed)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateStatus_CustomerCanCancelOwnPending(t *testing.T) {
	owner := customerActor()
	booking := pendingBooking(owner)

	bookings := new(MockBookingRepository)
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	bookings.On("UpdateStatusFrom", mock.Anything, booking.ID,
		entity.BookingStatusPending, entity.BookingStatusCancelled, mock.Anything).Return(true, nil)

	service, notifier := newTestService(bookings)

	updated, err := service.UpdateStatus(context.Background(), owner, booking.ID.String(), entity.BookingStatusCancelled)

	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, updated.Status)
	assert.Equal(t, entity.BookingStatusCancelled, notifier.waitStatusUpdate(t))
}

func TestUpdateStatus_CustomerCannotCancelConfirmed(t *testing.T) {
	owner := customerActor()
	booking := pendingBooking(owner)
	booking.Status = entity.BookingStatusConfirmed

	bookings := new(MockBookingRepository)
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	service, _ := newTestService(bookings)

	_, err := service.UpdateStatus(context.Background(), owner, booking.ID.String(), entity.BookingStatusCancelled)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateStatus_OtherCustomersBookingIsInvisible(t *testing.T) {
	booking := pendingBooking(customerActor())

	bookings := new(MockBookingRepository)
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	service, _ := newTestService(bookings)

	stranger := Actor{ID: uuid.NewString(), Email: "karim@example.com", Name: "Karim"}
	_, err := service.UpdateStatus(context.Background(), stranger, booking.ID.String(), entity.BookingStatusCancelled)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatus_ConcurrentTransitionLosesRace(t *testing.T) {
	booking := pendingBooking(customerActor())

	moved := pendingBooking(customerActor())
	moved.Base.ID = booking.ID
	moved.Status = entity.BookingStatusConfirmed

	bookings := new(MockBookingRepository)
	// First read sees Pending; the conditional update fails because another
	// request confirmed it in between; the re-read sees Confirmed.
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil).Once()
	bookings.On("UpdateStatusFrom", mock.Anything, booking.ID,
		entity.BookingStatusPending, entity.BookingStatusCancelled, mock.Anything).Return(false, nil)
	bookings.On("FindByID", mock.Anything, booking.ID).Return(moved, nil)

	service, _ := newTestService(bookings)

	_, err := service.UpdateStatus(context.Background(), adminActor(), booking.ID.String(), entity.BookingStatusCancelled)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// CancelOwnBooking

func TestCancelOwnBooking_Success(t *testing.T) {
	owner := customerActor()
	booking := pendingBooking(owner)

	bookings := new(MockBookingRepository)
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	bookings.On("UpdateStatusFrom", mock.Anything, booking.ID,
		entity.BookingStatusPending, entity.BookingStatusCancelled, mock.Anything).Return(true, nil)

	service, notifier := newTestService(bookings)

	cancelled, err := service.CancelOwnBooking(context.Background(), owner, booking.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, entity.BookingStatusCancelled, notifier.waitStatusUpdate(t))
}

func TestCancelOwnBooking_NotOwned(t *testing.T) {
	booking := pendingBooking(customerActor())

	bookings := new(MockBookingRepository)
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	service, _ := newTestService(bookings)

	stranger := Actor{ID: uuid.NewString(), Email: "karim@example.com", Name: "Karim"}
	_, err := service.CancelOwnBooking(context.Background(), stranger, booking.ID.String())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelOwnBooking_ConfirmedNeedsAdmin(t *testing.T) {
	owner := customerActor()
	booking := pendingBooking(owner)
	booking.Status = entity.BookingStatusConfirmed

	bookings := new(MockBookingRepository)
	bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	service, _ := newTestService(bookings)

	_, err := service.CancelOwnBooking(context.Background(), owner, booking.ID.String())

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// Listing

func TestListAllBookings_RequiresAdmin(t *testing.T) {
	service, _ := newTestService(new(MockBookingRepository))

	_, err := service.ListAllBookings(context.Background(), customerActor())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListAllBookings_Admin(t *testing.T) {
	owner := customerActor()
	all := []*entity.Booking{pendingBooking(owner), pendingBooking(owner)}

	bookings := new(MockBookingRepository)
	bookings.On("FindAll", mock.Anything).Return(all, nil)

	service, _ := newTestService(bookings)

	got, err := service.ListAllBookings(context.Background(), adminActor())

	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListOwnBookings(t *testing.T) {
	owner := customerActor()
	own := []*entity.Booking{pendingBooking(owner)}

	bookings := new(MockBookingRepository)
	bookings.On("FindByUserEmail", mock.Anything, owner.Email).Return(own, nil)

	service, _ := newTestService(bookings)

	got, err := service.ListOwnBookings(context.Background(), owner)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestIsAdministrator_CaseInsensitive(t *testing.T) {
	service, _ := newTestService(new(MockBookingRepository))

	assert.True(t, service.IsAdministrator("Admin@Care.xyz"))
	assert.False(t, service.IsAdministrator("rahim@example.com"))
}
