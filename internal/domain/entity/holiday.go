package entity

import "time"

// Holiday entrada del calendario de feriados usada para sugerir días especiales.
// Multiplier en cero significa "usar el multiplicador por defecto configurado".
type Holiday struct {
	ID         string
	Date       time.Time
	Name       string
	Multiplier float64
	CreatedAt  time.Time
}
