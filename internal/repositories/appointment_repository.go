package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "tasktracker.com/tasktracker/internal/errors"
	model "tasktracker.com/tasktracker/internal/models"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, apt *model.Appointment) error {
	return r.db.WithContext(ctx).Create(apt).Error
}

// FindByID is always scoped to the owning patient; an appointment that
// belongs to someone else reads as not found.
func (r *AppointmentRepository) FindByID(ctx context.Context, id, patientID string) (*model.Appointment, error) {
	var apt model.Appointment
	err := r.db.WithContext(ctx).
		First(&apt, "id = ? AND patient_id = ?", id, patientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &apt, nil
}

func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]model.Appointment, error) {
	var apts []model.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date desc").
		Find(&apts).Error
	return apts, err
}

func (r *AppointmentRepository) Update(ctx context.Context, id, patientID string, fields map[string]interface{}) (*model.Appointment, error) {
	res := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("id = ? AND patient_id = ?", id, patientID).
		Updates(fields)

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrAppointmentNotFound
	}

	return r.FindByID(ctx, id, patientID)
}

func (r *AppointmentRepository) CountByPatient(ctx context.Context, patientID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("patient_id = ?", patientID).Count(&n).Error
	return n, err
}

func (r *AppointmentRepository) CountUpcoming(ctx context.Context, patientID string, now time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("patient_id = ? AND date >= ? AND status = ?", patientID, now, model.AppointmentScheduled).
		Count(&n).Error
	return n, err
}

func (r *AppointmentRepository) CountByStatus(ctx context.Context, patientID string, status model.AppointmentStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("patient_id = ? AND status = ?", patientID, status).Count(&n).Error
	return n, err
}
