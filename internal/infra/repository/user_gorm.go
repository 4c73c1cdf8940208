package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/user"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserGormRepository) ListProviders(
	ctx context.Context,
) ([]models.User, error) {

	var us []models.User
	if err := r.db.WithContext(ctx).
		Where("is_provider = ?", true).
		Order("name ASC").
		Find(&us).Error; err != nil {
		return nil, err
	}

	return us, nil
}

// Compile-time check
var _ domain.Reader = (*UserGormRepository)(nil)
