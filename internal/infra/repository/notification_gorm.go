package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/notification"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) Create(
	ctx context.Context,
	n *models.Notification,
) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationGormRepository) ListRecent(
	ctx context.Context,
	recipientID uint,
	limit int,
) ([]models.Notification, error) {

	var ns []models.Notification
	if err := r.db.WithContext(ctx).
		Where("recipient_user_id = ?", recipientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&ns).Error; err != nil {
		return nil, err
	}

	return ns, nil
}

func (r *NotificationGormRepository) MarkRead(
	ctx context.Context,
	id uint,
) (*models.Notification, error) {

	var n models.Notification
	err := r.db.WithContext(ctx).First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// idempotente: marcar o que não existe é sucesso sem efeito
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !n.Read {
		if err := r.db.WithContext(ctx).
			Model(&n).
			Update("read", true).Error; err != nil {
			return nil, err
		}
		n.Read = true
	}

	return &n, nil
}

// Compile-time check
var _ domain.Repository = (*NotificationGormRepository)(nil)
