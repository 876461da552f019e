package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Metas-api/internal/application/dto"
	"github.com/jhoicas/Metas-api/internal/application/usecase"
	"github.com/jhoicas/Metas-api/internal/domain"
	"github.com/jhoicas/Metas-api/internal/domain/entity"
)

type memBranches struct{ byID map[string]*entity.Branch }

func (m *memBranches) Create(b *entity.Branch) error {
	for _, existing := range m.byID {
		if existing.CompanyID == b.CompanyID && existing.Code == b.Code {
			return domain.ErrBranchCodeExists
		}
	}
	m.byID[b.ID] = b
	return nil
}

func (m *memBranches) GetByID(id string) (*entity.Branch, error) { return m.byID[id], nil }

func (m *memBranches) ListByCompany(companyID string, limit, offset int) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range m.byID {
		if b.CompanyID == companyID {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestBranchUseCase_CrearConsultarListar(t *testing.T) {
	repo := &memBranches{byID: map[string]*entity.Branch{}}
	uc := usecase.NewBranchUseCase(repo)

	created, err := uc.Create("c-1", dto.CreateBranchRequest{Code: " cen ", Name: "Centro"})
	require.NoError(t, err)
	assert.Equal(t, "CEN", created.Code)
	assert.Equal(t, entity.BranchStatusActive, created.Status)

	got, err := uc.GetByID("c-1", created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Centro", got.Name)

	hidden, err := uc.GetByID("c-2", created.ID)
	require.NoError(t, err)
	assert.Nil(t, hidden, "sucursal de otra empresa")

	list, err := uc.List("c-1", 20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	_, err = uc.Create("c-1", dto.CreateBranchRequest{Code: "CEN", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrBranchCodeExists)
}
