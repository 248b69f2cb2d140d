package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/claudiaferraz/agenda-api/internal/domain/appointment"
	"github.com/claudiaferraz/agenda-api/internal/metrics"
	"github.com/claudiaferraz/agenda-api/internal/models"
)

type AgendaGormRepository struct {
	db *gorm.DB
}

func NewAgendaGormRepository(db *gorm.DB) *AgendaGormRepository {
	return &AgendaGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AgendaGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Appointment (CRUD)
// --------------------------------------------------

func (r *AgendaGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AgendaGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AgendaGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	// Omit impede que o Save toque na linha do cliente pré-carregado
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *AgendaGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// --------------------------------------------------
// Appointment (conclusão)
// --------------------------------------------------

// UpdateAppointmentWithServiceStamp grava o agendamento e o carimbo de
// último atendimento do cliente na mesma transação, evitando a janela de
// escrita parcial entre os dois updates.
func (r *AgendaGormRepository) UpdateAppointmentWithServiceStamp(
	ctx context.Context,
	ap *models.Appointment,
	servedAt time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(ap).Error; err != nil {
			return err
		}

		return tx.Model(&models.Client{}).
			Where("id = ?", ap.ClientID).
			Update("last_service_at", servedAt).Error
	})
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *AgendaGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Order("scheduled_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AgendaGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("scheduled_at >= ? AND scheduled_at < ?", start, end).
		Order("scheduled_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Métricas
// --------------------------------------------------

func (r *AgendaGormRepository) CountClients(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AgendaGormRepository) ListBirthDates(ctx context.Context) ([]time.Time, error) {
	var dates []time.Time
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("birth_date IS NOT NULL").
		Pluck("birth_date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *AgendaGormRepository) CountAppointmentsBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("scheduled_at >= ? AND scheduled_at < ?", start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time checks
var (
	_ domain.Repository  = (*AgendaGormRepository)(nil)
	_ metrics.Repository = (*AgendaGormRepository)(nil)
)
