package repository

import "github.com/jhoicas/Metas-api/internal/domain/entity"

// CompanyRepository define el puerto de lectura para Company (DIP).
type CompanyRepository interface {
	GetByID(id string) (*entity.Company, error)
}
