package metrics_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/claudiaferraz/agenda-api/internal/cache"
	"github.com/claudiaferraz/agenda-api/internal/metrics"
	"github.com/claudiaferraz/agenda-api/internal/timezone"
)

// MockRepository é um mock da interface metrics.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CountClients(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ListBirthDates(ctx context.Context) ([]time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockRepository) CountAppointmentsBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

// fakeCache guarda valores em memória, sem TTL real.
type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.data[key]; ok {
		return v, nil
	}
	return "", cache.ErrCacheMiss
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value.(string)
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func TestTotalClientsCachesResult(t *testing.T) {
	repo := new(MockRepository)
	svc := metrics.NewService(repo, newFakeCache())
	ctx := context.Background()

	repo.On("CountClients", ctx).Return(int64(12), nil).Once()

	assert.Equal(t, int64(12), svc.TotalClients(ctx))
	// segunda leitura vem do cache, o mock só permite uma chamada
	assert.Equal(t, int64(12), svc.TotalClients(ctx))

	repo.AssertExpectations(t)
}

func TestInvalidateForcesRecompute(t *testing.T) {
	repo := new(MockRepository)
	svc := metrics.NewService(repo, newFakeCache())
	ctx := context.Background()

	repo.On("CountClients", ctx).Return(int64(12), nil).Once()
	assert.Equal(t, int64(12), svc.TotalClients(ctx))

	svc.Invalidate(ctx)

	repo.On("CountClients", ctx).Return(int64(13), nil).Once()
	assert.Equal(t, int64(13), svc.TotalClients(ctx))

	repo.AssertExpectations(t)
}

func TestTotalClientsFailsOpenToZero(t *testing.T) {
	repo := new(MockRepository)
	svc := metrics.NewService(repo, newFakeCache())
	ctx := context.Background()

	repo.On("CountClients", ctx).Return(int64(0), errors.New("connection refused"))

	assert.Equal(t, int64(0), svc.TotalClients(ctx))
}

func TestBirthdaysToday(t *testing.T) {
	repo := new(MockRepository)
	svc := metrics.NewService(repo, newFakeCache())
	ctx := context.Background()

	today := timezone.Now()
	dates := []time.Time{
		// aniversariante de hoje, em outro ano
		time.Date(1990, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
		// outro dia
		time.Date(1985, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1),
	}
	repo.On("ListBirthDates", ctx).Return(dates, nil)

	assert.Equal(t, int64(1), svc.BirthdaysToday(ctx))
}

func TestCountBirthdaysOn(t *testing.T) {
	today := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	dates := []time.Time{
		time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2001, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(1990, 10, 3, 0, 0, 0, 0, time.UTC), // mês/dia invertidos
		time.Date(1990, 3, 11, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, int64(2), metrics.CountBirthdaysOn(dates, today))
	assert.Equal(t, int64(0), metrics.CountBirthdaysOn(nil, today))
}

func TestAppointmentsTodayUsesLocalDayBounds(t *testing.T) {
	repo := new(MockRepository)
	svc := metrics.NewService(repo, newFakeCache())
	ctx := context.Background()

	repo.On("CountAppointmentsBetween", ctx,
		mock.MatchedBy(func(start time.Time) bool {
			return start.Hour() == 0 && start.Minute() == 0
		}),
		mock.MatchedBy(func(end time.Time) bool {
			return end.Hour() == 0 && end.Minute() == 0
		}),
	).Return(int64(3), nil)

	assert.Equal(t, int64(3), svc.AppointmentsToday(ctx))
	repo.AssertExpectations(t)
}
