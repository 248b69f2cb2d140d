package appointment_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/claudiaferraz/agenda-api/internal/audit"
	"github.com/claudiaferraz/agenda-api/internal/models"
)

// MockRepository é um mock da interface domain/appointment.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if ap := args.Get(0); ap != nil {
		return ap.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) DeleteAppointment(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) UpdateAppointmentWithServiceStamp(ctx context.Context, ap *models.Appointment, servedAt time.Time) error {
	args := m.Called(ctx, ap, servedAt)
	return args.Error(0)
}

func (m *MockRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if aps := args.Get(0); aps != nil {
		return aps.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListAppointmentsForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, start, end)
	if aps := args.Get(0); aps != nil {
		return aps.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

// fakeAuditor coleta eventos de forma síncrona.
type fakeAuditor struct {
	events []audit.Event
}

func (f *fakeAuditor) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

// fakeInvalidator conta invalidações de cache.
type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate(ctx context.Context) {
	f.calls++
}
