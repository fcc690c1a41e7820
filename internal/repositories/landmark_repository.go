package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"yatra/internal/models/db_models"
)

type LandmarkRepository interface {
	Insert(ctx context.Context, landmark *db_models.Landmark) error
	FindById(ctx context.Context, id string) (*db_models.Landmark, error)
	ListByCity(ctx context.Context, city string, page, pageSize int) ([]*db_models.Landmark, error)
	ListAll(ctx context.Context, page, pageSize int) ([]*db_models.Landmark, error)
}

type landmarkRepository struct {
	db *gorm.DB
}

func NewLandmarkRepository(db *gorm.DB) LandmarkRepository {
	return &landmarkRepository{
		db: db,
	}
}

func (l *landmarkRepository) Insert(ctx context.Context, landmark *db_models.Landmark) error {
	return l.db.WithContext(ctx).Create(landmark).Error
}

func (l *landmarkRepository) FindById(ctx context.Context, id string) (*db_models.Landmark, error) {
	var landmark db_models.Landmark
	err := l.db.WithContext(ctx).First(&landmark, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &landmark, nil
}

func (l *landmarkRepository) ListByCity(ctx context.Context, city string, page, pageSize int) ([]*db_models.Landmark, error) {
	var landmarks []*db_models.Landmark
	err := l.db.WithContext(ctx).
		Where("city ILIKE ?", "%"+city+"%").
		Order("popularity DESC NULLS LAST").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&landmarks).Error

	return landmarks, err
}

func (l *landmarkRepository) ListAll(ctx context.Context, page, pageSize int) ([]*db_models.Landmark, error) {
	var landmarks []*db_models.Landmark
	err := l.db.WithContext(ctx).
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&landmarks).Error

	return landmarks, err
}
