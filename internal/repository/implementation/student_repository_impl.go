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

type StudentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StudentMapper
}

func NewStudentRepository(db *gorm.DB) contract.StudentRepository {
	return &StudentRepositoryImpl{
		db:     db,
		mapper: mapper.NewStudentMapper(),
	}
}

func (r *StudentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StudentRepositoryImpl) Create(ctx context.Context, student *entity.Student) error {
	m := r.mapper.ToModel(student)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*student = *r.mapper.ToEntity(m)
	return nil
}

func (r *StudentRepositoryImpl) Update(ctx context.Context, student *entity.Student) error {
	m := r.mapper.ToModel(student)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*student = *r.mapper.ToEntity(m)
	return nil
}

func (r *StudentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Student, error) {
	var m model.Student
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StudentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Student, error) {
	var models []*model.Student
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Student, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *StudentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Student{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StudentRepositoryImpl) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.FindAll(ctx, specification.ByIDs{IDs: ids})
}

func (r *StudentRepositoryImpl) RoomOccupancy(ctx context.Context, roomId uuid.UUID) (*entity.Occupancy, error) {
	var confirmed, temporary int64
	confirmedQ := specification.ByConfirmedRoom{RoomId: roomId}.Apply(r.db.WithContext(ctx).Model(&model.Student{}))
	if err := confirmedQ.Count(&confirmed).Error; err != nil {
		return nil, err
	}
	temporaryQ := specification.ByTemporaryRoom{RoomId: roomId}.Apply(r.db.WithContext(ctx).Model(&model.Student{}))
	if err := temporaryQ.Count(&temporary).Error; err != nil {
		return nil, err
	}
	return &entity.Occupancy{
		RoomId:    roomId,
		Confirmed: int(confirmed),
		Temporary: int(temporary),
	}, nil
}
