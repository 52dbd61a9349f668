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

type RoommateGroupRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoommateGroupMapper
}

func NewRoommateGroupRepository(db *gorm.DB) contract.RoommateGroupRepository {
	return &RoommateGroupRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoommateGroupMapper(),
	}
}

func (r *RoommateGroupRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RoommateGroupRepositoryImpl) Create(ctx context.Context, group *entity.RoommateGroup) error {
	m := r.mapper.ToModel(group)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*group = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoommateGroupRepositoryImpl) Update(ctx context.Context, group *entity.RoommateGroup) error {
	m := r.mapper.ToModel(group)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*group = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoommateGroupRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoommateGroup, error) {
	var m model.RoommateGroup
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RoommateGroupRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoommateGroup, error) {
	var models []*model.RoommateGroup
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.RoommateGroup, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *RoommateGroupRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RoommateGroup{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RoommateGroupRepositoryImpl) FindActiveByMember(ctx context.Context, studentId uuid.UUID) (*entity.RoommateGroup, error) {
	statuses := make([]string, 0, len(entity.ActiveGroupStatuses))
	for _, s := range entity.ActiveGroupStatuses {
		statuses = append(statuses, string(s))
	}
	return r.FindOne(ctx,
		specification.GroupMemberContains{StudentId: studentId},
		specification.ByStatusIn{Statuses: statuses},
	)
}

type RoommateRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoommateRequestMapper
}

func NewRoommateRequestRepository(db *gorm.DB) contract.RoommateRequestRepository {
	return &RoommateRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoommateRequestMapper(),
	}
}

func (r *RoommateRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RoommateRequestRepositoryImpl) Create(ctx context.Context, request *entity.RoommateRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoommateRequestRepositoryImpl) Update(ctx context.Context, request *entity.RoommateRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoommateRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoommateRequest, error) {
	var m model.RoommateRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RoommateRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoommateRequest, error) {
	var models []*model.RoommateRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.RoommateRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *RoommateRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RoommateRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
