package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/mapper"
	"hostel-mgmt-be/internal/model"
	"hostel-mgmt-be/internal/repository/contract"
	"hostel-mgmt-be/internal/repository/specification"
)

type RoomRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoomMapper
}

func NewRoomRepository(db *gorm.DB) contract.RoomRepository {
	return &RoomRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoomMapper(),
	}
}

func (r *RoomRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RoomRepositoryImpl) Create(ctx context.Context, room *entity.Room) error {
	m := r.mapper.ToModel(room)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*room = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoomRepositoryImpl) Update(ctx context.Context, room *entity.Room) error {
	m := r.mapper.ToModel(room)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*room = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoomRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error) {
	var m model.Room
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RoomRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Room, error) {
	var models []*model.Room
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Room, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *RoomRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Room{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
