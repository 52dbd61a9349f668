package unitofwork

import (
	"context"

	"gorm.io/gorm"
)

// RepositoryFactory hands out a fresh unit of work per request.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}

type repositoryFactory struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &repositoryFactory{db: db}
}

func (f *repositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	// The UoW is short lived. Begin() opens the transaction when a flow
	// actually mutates; read-only paths use the shared handle directly.
	return NewUnitOfWork(f.db)
}
