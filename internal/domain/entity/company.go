package entity

import "time"

// Company representa la cadena de panaderías (tenant). Sus sucursales y usuarios cuelgan de ella.
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
