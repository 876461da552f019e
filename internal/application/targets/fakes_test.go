package targets_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jhoicas/Metas-api/internal/application/dto"
	"github.com/jhoicas/Metas-api/internal/domain/entity"
	"github.com/jhoicas/Metas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeBranchRepo struct {
	branches map[string]*entity.Branch
	err      error
}

func (f *fakeBranchRepo) Create(b *entity.Branch) error {
	f.branches[b.ID] = b
	return nil
}

func (f *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.branches[id], nil
}

func (f *fakeBranchRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range f.branches {
		if b.CompanyID == companyID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeTargetRepo struct {
	byID      map[string]*entity.MonthlyTarget
	upsertErr error
}

func newFakeTargetRepo() *fakeTargetRepo {
	return &fakeTargetRepo{byID: map[string]*entity.MonthlyTarget{}}
}

func (f *fakeTargetRepo) Upsert(_ context.Context, t *entity.MonthlyTarget) (string, error) {
	if f.upsertErr != nil {
		return "", f.upsertErr
	}
	for id, existing := range f.byID {
		if existing.CompanyID == t.CompanyID && existing.BranchID == t.BranchID &&
			existing.Month == t.Month && existing.Year == t.Year {
			cp := *t
			cp.ID = id
			cp.CreatedAt = existing.CreatedAt
			f.byID[id] = &cp
			return id, nil
		}
	}
	cp := *t
	f.byID[t.ID] = &cp
	return t.ID, nil
}

func (f *fakeTargetRepo) GetByID(_ context.Context, id string) (*entity.MonthlyTarget, error) {
	return f.byID[id], nil
}

func (f *fakeTargetRepo) GetByPeriod(_ context.Context, companyID, branchID string, month, year int) (*entity.MonthlyTarget, error) {
	for _, t := range f.byID {
		if t.CompanyID == companyID && t.BranchID == branchID && t.Month == month && t.Year == year {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTargetRepo) List(_ context.Context, filter repository.MonthlyTargetFilter) ([]*entity.MonthlyTarget, int, error) {
	var out []*entity.MonthlyTarget
	for _, t := range f.byID {
		if t.CompanyID != filter.CompanyID {
			continue
		}
		if filter.BranchID != "" && t.BranchID != filter.BranchID {
			continue
		}
		if filter.Year != 0 && t.Year != filter.Year {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, len(out), nil
}

// fakeTx ejecuta fn directamente contra el repositorio en memoria.
type fakeTx struct {
	repo  *fakeTargetRepo
	calls int
}

func (f *fakeTx) RunTargets(_ context.Context, fn func(repo repository.MonthlyTargetRepository) error) error {
	f.calls++
	return fn(f.repo)
}

type fakeSalesRepo struct {
	rows []repository.DailySalesResult
	err  error
}

func (f *fakeSalesRepo) GetDailySales(_ context.Context, _ string, from, to time.Time) ([]repository.DailySalesResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []repository.DailySalesResult
	for _, r := range f.rows {
		if !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeHolidayRepo struct {
	list []*entity.Holiday
}

func (f *fakeHolidayRepo) ListByMonth(_ context.Context, year int, month time.Month) ([]*entity.Holiday, error) {
	var out []*entity.Holiday
	for _, h := range f.list {
		if h.Date.Year() == year && h.Date.Month() == month {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) Upsert(_ context.Context, h *entity.Holiday) error {
	f.list = append(f.list, h)
	return nil
}

type memCache struct {
	data        map[string]*dto.TargetProgressDTO
	invalidated []string
	failGet     bool
}

func newMemCache() *memCache { return &memCache{data: map[string]*dto.TargetProgressDTO{}} }

func (c *memCache) GetProgress(_ context.Context, id string) (*dto.TargetProgressDTO, bool, error) {
	if c.failGet {
		return nil, false, errors.New("redis caído")
	}
	p, ok := c.data[id]
	return p, ok, nil
}

func (c *memCache) SetProgress(_ context.Context, id string, p *dto.TargetProgressDTO) error {
	c.data[id] = p
	return nil
}

func (c *memCache) InvalidateTarget(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	delete(c.data, id)
	return nil
}
