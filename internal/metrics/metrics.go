// Package metrics calcula os contadores do painel (clientes, aniversários
// do dia, agendamentos do dia) com cache de janela curta.
package metrics

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/claudiaferraz/agenda-api/internal/cache"
	"github.com/claudiaferraz/agenda-api/internal/timezone"
)

// TTL limita a janela de leitura desatualizada; escritas locais invalidam
// na hora.
const TTL = 45 * time.Second

const (
	keyTotalClients      = "metrics:total_clients"
	keyBirthdaysToday    = "metrics:birthdays_today"
	keyAppointmentsToday = "metrics:appointments_today"
)

// Repository é o recorte de persistência que as métricas precisam.
type Repository interface {
	CountClients(ctx context.Context) (int64, error)
	ListBirthDates(ctx context.Context) ([]time.Time, error)
	CountAppointmentsBetween(ctx context.Context, start, end time.Time) (int64, error)
}

type Service struct {
	repo  Repository
	cache cache.Client
}

func NewService(repo Repository, cache cache.Client) *Service {
	return &Service{repo: repo, cache: cache}
}

// TotalClients conta todos os clientes cadastrados. Zero em caso de falha.
func (s *Service) TotalClients(ctx context.Context) int64 {
	return s.cachedCount(ctx, keyTotalClients, s.repo.CountClients)
}

// BirthdaysToday conta clientes cujo mês/dia de nascimento é hoje no fuso
// local. Zero em caso de falha.
func (s *Service) BirthdaysToday(ctx context.Context) int64 {
	return s.cachedCount(ctx, keyBirthdaysToday, func(ctx context.Context) (int64, error) {
		dates, err := s.repo.ListBirthDates(ctx)
		if err != nil {
			return 0, err
		}
		return CountBirthdaysOn(dates, timezone.Now()), nil
	})
}

// AppointmentsToday conta agendamentos cujo horário cai no dia local
// corrente. Zero em caso de falha.
func (s *Service) AppointmentsToday(ctx context.Context) int64 {
	return s.cachedCount(ctx, keyAppointmentsToday, func(ctx context.Context) (int64, error) {
		start, end := timezone.DayBounds(timezone.Now())
		return s.repo.CountAppointmentsBetween(ctx, start, end)
	})
}

// Invalidate descarta os três contadores. Chamado após toda mutação de
// cliente ou agendamento.
func (s *Service) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, keyTotalClients, keyBirthdaysToday, keyAppointmentsToday); err != nil {
		log.Printf("metrics: cache invalidation failed: %v", err)
	}
}

func (s *Service) cachedCount(
	ctx context.Context,
	key string,
	compute func(ctx context.Context) (int64, error),
) int64 {

	if raw, err := s.cache.Get(ctx, key); err == nil {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	}

	n, err := compute(ctx)
	if err != nil {
		// métrica nunca propaga erro de backend; o painel mostra zero
		log.Printf("metrics: %s failed: %v", key, err)
		return 0
	}

	if err := s.cache.Set(ctx, key, strconv.FormatInt(n, 10), TTL); err != nil {
		log.Printf("metrics: cache set %s failed: %v", key, err)
	}

	return n
}

// CountBirthdaysOn conta quantas datas têm o mesmo mês e dia de today.
func CountBirthdaysOn(dates []time.Time, today time.Time) int64 {
	var n int64
	for _, d := range dates {
		if d.Month() == today.Month() && d.Day() == today.Day() {
			n++
		}
	}
	return n
}
