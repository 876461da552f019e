package repository

import "github.com/jhoicas/Metas-api/internal/domain/entity"

// BranchRepository define el puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Branch, error)
}
