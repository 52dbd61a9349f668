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
	"hostel-mgmt-be/internal/repository/scope"
	"hostel-mgmt-be/internal/repository/specification"
)

type WalletRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WalletMapper
}

func NewWalletRepository(db *gorm.DB) contract.WalletRepository {
	return &WalletRepositoryImpl{
		db:     db,
		mapper: mapper.NewWalletMapper(),
	}
}

func (r *WalletRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WalletRepositoryImpl) Create(ctx context.Context, wallet *entity.Wallet) error {
	m := r.mapper.ToModel(wallet)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*wallet = *r.mapper.ToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) Update(ctx context.Context, wallet *entity.Wallet) error {
	m := r.mapper.ToModel(wallet)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*wallet = *r.mapper.ToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Wallet, error) {
	var m model.Wallet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WalletRepositoryImpl) FindOrCreateByStudent(ctx context.Context, studentId uuid.UUID) (*entity.Wallet, error) {
	wallet, err := r.FindOne(ctx, specification.Filter("student_id", studentId))
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	wallet = &entity.Wallet{Id: uuid.New(), StudentId: studentId}
	if err := r.Create(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (r *WalletRepositoryImpl) CreateTransaction(ctx context.Context, txn *entity.WalletTransaction) error {
	m := r.mapper.TxnToModel(txn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*txn = *r.mapper.TxnToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) FindTransactions(ctx context.Context, walletId uuid.UUID, specs ...specification.Specification) ([]*entity.WalletTransaction, error) {
	var models []*model.WalletTransaction
	query := r.db.WithContext(ctx).Where("wallet_id = ?", walletId)
	query = r.applySpecifications(query, specs...)
	if err := query.Scopes(scope.OrderByCreatedDesc).Find(&models).Error; err != nil {
		return nil, err
	}
	txns := make([]*entity.WalletTransaction, len(models))
	for i, m := range models {
		txns[i] = r.mapper.TxnToEntity(m)
	}
	return txns, nil
}
