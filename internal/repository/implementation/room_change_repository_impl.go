package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/mapper"
	"hostel-mgmt-be/internal/model"
	"hostel-mgmt-be/internal/repository/contract"
	"hostel-mgmt-be/internal/repository/specification"
)

type RoomChangeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoomChangeMapper
}

func NewRoomChangeRepository(db *gorm.DB) contract.RoomChangeRepository {
	return &RoomChangeRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoomChangeMapper(),
	}
}

func (r *RoomChangeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RoomChangeRepositoryImpl) Create(ctx context.Context, request *entity.RoomChangeRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoomChangeRepositoryImpl) Update(ctx context.Context, request *entity.RoomChangeRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoomChangeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoomChangeRequest, error) {
	var m model.RoomChangeRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RoomChangeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoomChangeRequest, error) {
	var models []*model.RoomChangeRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.RoomChangeRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *RoomChangeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RoomChangeRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RoomChangeRepositoryImpl) FindActiveByStudent(ctx context.Context, studentId uuid.UUID) (*entity.RoomChangeRequest, error) {
	statuses := make([]string, 0, len(entity.ActiveRoomChangeStatuses))
	for _, s := range entity.ActiveRoomChangeStatuses {
		statuses = append(statuses, string(s))
	}
	return r.FindOne(ctx,
		specification.Filter("student_id", studentId),
		specification.ByStatusIn{Statuses: statuses},
	)
}
