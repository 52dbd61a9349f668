package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/mapper"
	"hostel-mgmt-be/internal/model"
	"hostel-mgmt-be/internal/repository/contract"
	"hostel-mgmt-be/internal/repository/specification"
)

type FeeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeeMapper
}

func NewFeeRepository(db *gorm.DB) contract.FeeRepository {
	return &FeeRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeeMapper(),
	}
}

func (r *FeeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FeeRepositoryImpl) Create(ctx context.Context, fee *entity.Fee) error {
	m := r.mapper.ToModel(fee)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*fee = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeeRepositoryImpl) Update(ctx context.Context, fee *entity.Fee) error {
	m := r.mapper.ToModel(fee)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*fee = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Fee, error) {
	var m model.Fee
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Fee, error) {
	var models []*model.Fee
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Fee, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *FeeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Fee{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *FeeRepositoryImpl) HasOutstanding(ctx context.Context, studentId uuid.UUID, feeType entity.FeeType) (bool, error) {
	count, err := r.Count(ctx,
		specification.Filter("student_id", studentId),
		specification.Filter("type", string(feeType)),
		specification.OutstandingFees{},
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FeeRepositoryImpl) SumPaidSince(ctx context.Context, since time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Fee{}).
		Where("status = ? AND paid_at >= ?", string(entity.FeeStatusPaid), since).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *FeeRepositoryImpl) TotalPaidForRoom(ctx context.Context, studentId, roomId uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Fee{}).
		Where("student_id = ? AND room_id = ? AND type = ? AND status = ?",
			studentId, roomId, string(entity.FeeTypeRent), string(entity.FeeStatusPaid)).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
