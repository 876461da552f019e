package entity

import "time"

// Estados de sucursal.
const (
	BranchStatusActive = "active"
	BranchStatusClosed = "closed"
)

// Branch representa una sucursal de la cadena. Cada meta mensual pertenece a una sucursal.
type Branch struct {
	ID        string
	CompanyID string
	Code      string // código corto visible en reportes, único por empresa
	Name      string
	Address   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive indica si la sucursal acepta nuevas metas.
func (b *Branch) IsActive() bool {
	return b != nil && b.Status == BranchStatusActive
}
