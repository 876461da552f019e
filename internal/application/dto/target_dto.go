package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTargetRequest cuerpo de POST /api/monthly-targets y /api/monthly-targets/preview.
//
// weekday_weights usa claves "0" (domingo) a "6" (sábado). Si se omite completo se usan
// los pesos por defecto; si falta algún día, ese día pesa 1.0.
type MonthlyTargetRequest struct {
	BranchID       string             `json:"branch_id" validate:"required,uuid"`
	Month          int                `json:"month" validate:"min=1,max=12"`
	Year           int                `json:"year" validate:"min=1"`
	TargetAmount   float64            `json:"target_amount"`
	WeekdayWeights map[string]float64 `json:"weekday_weights"`
	SpecialDays    []SpecialDayDTO    `json:"special_days" validate:"dive"`
	// DailyTargets lo envía el formulario por compatibilidad; el servidor siempre recalcula.
	DailyTargets map[string]float64 `json:"daily_targets,omitempty"`
}

// SpecialDayDTO día especial serializado (fecha ISO YYYY-MM-DD).
type SpecialDayDTO struct {
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Name       string  `json:"name" validate:"required,max=120"`
	Multiplier float64 `json:"multiplier" validate:"gte=0"`
	Category   string  `json:"category" validate:"required,oneof=holiday promotion event"`
}

// DailyTargetDTO meta de un día para la gráfica de vista previa.
type DailyTargetDTO struct {
	Date       string  `json:"date"`
	Weekday    int     `json:"weekday"`
	Multiplier float64 `json:"multiplier"`
	SpecialDay string  `json:"special_day,omitempty"`
	Category   string  `json:"category,omitempty"`
	Amount     float64 `json:"amount"`
}

// TargetSummaryDTO totales de la distribución.
type TargetSummaryDTO struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
}

// PreviewResponse respuesta de la vista previa (no persiste nada).
type PreviewResponse struct {
	DailyTargets map[string]float64 `json:"daily_targets"`
	Days         []DailyTargetDTO   `json:"days"`
	Summary      TargetSummaryDTO   `json:"summary"`
}

// MonthlyTargetDayDTO día persistido de una meta mensual.
type MonthlyTargetDayDTO struct {
	Date       string          `json:"date"`
	Multiplier float64         `json:"multiplier"`
	SpecialDay string          `json:"special_day,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
}

// MonthlyTargetResponse meta mensual persistida.
type MonthlyTargetResponse struct {
	ID             string                     `json:"id"`
	CompanyID      string                     `json:"company_id"`
	BranchID       string                     `json:"branch_id"`
	Month          int                        `json:"month"`
	Year           int                        `json:"year"`
	TargetAmount   decimal.Decimal            `json:"target_amount"`
	WeekdayWeights map[string]float64         `json:"weekday_weights"`
	SpecialDays    []SpecialDayDTO            `json:"special_days"`
	DailyTargets   map[string]decimal.Decimal `json:"daily_targets"`
	Days           []MonthlyTargetDayDTO      `json:"days"`
	Summary        TargetSummaryDTO           `json:"summary"`
	CreatedBy      string                     `json:"created_by"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// MonthlyTargetHeaderDTO fila del listado de metas (sin detalle diario).
type MonthlyTargetHeaderDTO struct {
	ID           string          `json:"id"`
	BranchID     string          `json:"branch_id"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MonthlyTargetListResponse lista paginada de metas.
type MonthlyTargetListResponse struct {
	Items []MonthlyTargetHeaderDTO `json:"items"`
	Page  PageResponse             `json:"page"`
}

// DayProgressDTO meta vs venta real de un día.
type DayProgressDTO struct {
	Date        string          `json:"date"`
	Target      decimal.Decimal `json:"target"`
	Actual      decimal.Decimal `json:"actual"`
	Difference  decimal.Decimal `json:"difference"`  // actual - target
	Achievement decimal.Decimal `json:"achievement"` // actual / target * 100
	HasSales    bool            `json:"has_sales"`
}

// TargetProgressDTO respuesta de GET /api/monthly-targets/:id/progress.
type TargetProgressDTO struct {
	TargetID          string           `json:"target_id"`
	BranchID          string           `json:"branch_id"`
	Month             int              `json:"month"`
	Year              int              `json:"year"`
	TargetAmount      decimal.Decimal  `json:"target_amount"`
	TargetToDate      decimal.Decimal  `json:"target_to_date"`
	ActualToDate      decimal.Decimal  `json:"actual_to_date"`
	AchievementToDate decimal.Decimal  `json:"achievement_to_date"`
	MonthAchievement  decimal.Decimal  `json:"month_achievement"`
	AsOf              string           `json:"as_of"`
	Days              []DayProgressDTO `json:"days"`
}

// SpecialDaySuggestionsResponse feriados del mes listos para agregar como días especiales.
type SpecialDaySuggestionsResponse struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Items []SpecialDayDTO `json:"items"`
}
