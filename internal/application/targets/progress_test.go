package targets_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Metas-api/internal/application/targets"
	"github.com/jhoicas/Metas-api/internal/domain/entity"
	"github.com/jhoicas/Metas-api/internal/domain/repository"
	"github.com/jhoicas/Metas-api/internal/domain/target"
)

// storedTarget meta de febrero 2025 (28 días) de 100 por día.
func storedTarget() *entity.MonthlyTarget {
	mt := &entity.MonthlyTarget{
		ID:           "t-1",
		CompanyID:    testCompanyID,
		BranchID:     testBranchID,
		Month:        2,
		Year:         2025,
		TargetAmount: decimal.NewFromInt(2800),
		Weights:      target.WeekdayWeightsFromMap(nil),
	}
	mt.SetAllocation(target.Allocate(mt.Specification()))
	return mt
}

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 15, 30, 0, 0, time.UTC) }
}

func TestProgress_ComparaMetaContraVentas(t *testing.T) {
	repo := newFakeTargetRepo()
	repo.byID["t-1"] = storedTarget()
	sales := &fakeSalesRepo{rows: []repository.DailySalesResult{
		{Date: target.Date(2025, time.February, 1), TotalSales: decimal.NewFromInt(150)},
		{Date: target.Date(2025, time.February, 2), TotalSales: decimal.NewFromInt(50)},
		{Date: target.Date(2025, time.March, 1), TotalSales: decimal.NewFromInt(9999)},
	}}
	cache := newMemCache()
	uc := targets.NewProgressUseCase(repo, sales, cache).WithClock(fixedClock(2025, time.February, 2))

	out, err := uc.Progress(context.Background(), testCompanyID, "t-1")
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, out.Days, 28)
	assert.Equal(t, "2025-02-02", out.AsOf)

	d1 := out.Days[0]
	assert.Equal(t, "2025-02-01", d1.Date)
	assert.True(t, d1.HasSales)
	assert.Equal(t, "150", d1.Achievement.String())
	assert.Equal(t, "50", d1.Difference.String())

	d3 := out.Days[2]
	assert.False(t, d3.HasSales)
	assert.True(t, d3.Actual.IsZero())

	assert.Equal(t, "200", out.TargetToDate.String())
	assert.Equal(t, "200", out.ActualToDate.String())
	assert.Equal(t, "100", out.AchievementToDate.String())
	assert.Equal(t, "7.14", out.MonthAchievement.String(), "200 / 2800")

	_, cached := cache.data["t-1"]
	assert.True(t, cached, "el resultado debe quedar en caché")
}

func TestProgress_UsaCacheSiExiste(t *testing.T) {
	repo := newFakeTargetRepo()
	repo.byID["t-1"] = storedTarget()
	cache := newMemCache()
	sales := &fakeSalesRepo{}
	uc := targets.NewProgressUseCase(repo, sales, cache).WithClock(fixedClock(2025, time.February, 10))

	first, err := uc.Progress(context.Background(), testCompanyID, "t-1")
	require.NoError(t, err)

	sales.rows = []repository.DailySalesResult{{Date: target.Date(2025, time.February, 1), TotalSales: decimal.NewFromInt(1)}}
	second, err := uc.Progress(context.Background(), testCompanyID, "t-1")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestProgress_ErrorDeCacheNoBloquea(t *testing.T) {
	repo := newFakeTargetRepo()
	repo.byID["t-1"] = storedTarget()
	cache := newMemCache()
	cache.failGet = true
	uc := targets.NewProgressUseCase(repo, &fakeSalesRepo{}, cache).WithClock(fixedClock(2025, time.March, 1))

	out, err := uc.Progress(context.Background(), testCompanyID, "t-1")
	require.NoError(t, err)
	assert.Equal(t, "2800", out.TargetToDate.String(), "mes cerrado: todo el mes cuenta a la fecha")
	assert.True(t, out.AchievementToDate.IsZero())
}

func TestProgress_OtraEmpresaDevuelveNil(t *testing.T) {
	repo := newFakeTargetRepo()
	repo.byID["t-1"] = storedTarget()
	uc := targets.NewProgressUseCase(repo, &fakeSalesRepo{}, newMemCache())

	out, err := uc.Progress(context.Background(), otherCompany, "t-1")
	require.NoError(t, err)
	assert.Nil(t, out)
}
