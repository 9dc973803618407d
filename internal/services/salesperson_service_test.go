package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/models"
)

type fakeSalespersonRepo struct {
	byID    map[string]*models.Salesperson
	listErr error
	created []*models.Salesperson
}

func newFakeSalespersonRepo() *fakeSalespersonRepo {
	return &fakeSalespersonRepo{byID: make(map[string]*models.Salesperson)}
}

func (f *fakeSalespersonRepo) Create(sp *models.Salesperson) error {
	if sp.ID == uuid.Nil {
		sp.ID = uuid.New()
	}
	f.byID[sp.ID.String()] = sp
	f.created = append(f.created, sp)
	return nil
}

func (f *fakeSalespersonRepo) GetByID(id string) (*models.Salesperson, error) {
	sp, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sp, nil
}

func (f *fakeSalespersonRepo) List() ([]models.Salesperson, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Salesperson, 0, len(f.byID))
	for _, sp := range f.byID {
		out = append(out, *sp)
	}
	return out, nil
}

func (f *fakeSalespersonRepo) Update(sp *models.Salesperson) error {
	f.byID[sp.ID.String()] = sp
	return nil
}

func (f *fakeSalespersonRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeSalespersonRepo) Exists(id uuid.UUID) (bool, error) {
	_, ok := f.byID[id.String()]
	return ok, nil
}

func TestSalespersonService_Create(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		svc := NewSalespersonService(newFakeSalespersonRepo())

		sp, err := svc.Create(&models.CreateSalespersonRequest{Name: "Grace Lee", Region: "South"})
		require.NoError(t, err)
		assert.Equal(t, "Grace Lee", sp.Name)
		assert.True(t, sp.IsActive, "active by default")
	})

	t.Run("missing name", func(t *testing.T) {
		svc := NewSalespersonService(newFakeSalespersonRepo())
		_, err := svc.Create(&models.CreateSalespersonRequest{Region: "South"})
		assert.Error(t, err)
	})

	t.Run("missing region", func(t *testing.T) {
		svc := NewSalespersonService(newFakeSalespersonRepo())
		_, err := svc.Create(&models.CreateSalespersonRequest{Name: "Grace Lee"})
		assert.Error(t, err)
	})

	t.Run("nil repo", func(t *testing.T) {
		svc := NewSalespersonService(nil)
		_, err := svc.Create(&models.CreateSalespersonRequest{Name: "Grace Lee", Region: "South"})
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestSalespersonService_ListFallback(t *testing.T) {
	t.Run("nil repo serves fallback roster", func(t *testing.T) {
		svc := NewSalespersonService(nil)

		roster := svc.List()
		require.Len(t, roster, 6)

		names := make([]string, len(roster))
		total := 0.0
		for i, sp := range roster {
			names[i] = sp.Name
			total += sp.TotalRevenue
		}
		assert.Contains(t, names, "Emily Davis")
		assert.Contains(t, names, "Frank Miller")
		assert.Equal(t, 259000.0, total, "fallback roster revenue matches the sample series")
	})

	t.Run("query failure serves fallback roster", func(t *testing.T) {
		repo := newFakeSalespersonRepo()
		repo.listErr = errors.New("connection reset")
		svc := NewSalespersonService(repo)

		roster := svc.List()
		assert.Len(t, roster, 6)
	})

	t.Run("healthy repo serves persisted roster", func(t *testing.T) {
		repo := newFakeSalespersonRepo()
		svc := NewSalespersonService(repo)
		_, err := svc.Create(&models.CreateSalespersonRequest{Name: "Only One", Region: "North"})
		require.NoError(t, err)

		roster := svc.List()
		require.Len(t, roster, 1)
		assert.Equal(t, "Only One", roster[0].Name)
	})
}

func TestSalespersonService_ContactQR(t *testing.T) {
	repo := newFakeSalespersonRepo()
	svc := NewSalespersonService(repo)

	sp, err := svc.Create(&models.CreateSalespersonRequest{
		Name:   "Alice Johnson",
		Region: "North",
		Phone:  "+1-555-0101",
		Email:  "alice@company.com",
	})
	require.NoError(t, err)

	t.Run("renders data uri", func(t *testing.T) {
		qr, err := svc.ContactQR(sp.ID.String())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.ContactQR(uuid.NewString())
		assert.True(t, svc.NotFound(err))
	})
}

func TestSalespersonService_Update(t *testing.T) {
	repo := newFakeSalespersonRepo()
	svc := NewSalespersonService(repo)

	sp, err := svc.Create(&models.CreateSalespersonRequest{Name: "Alice Johnson", Region: "North"})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(sp.ID.String(), &models.CreateSalespersonRequest{
		Name:     "Alice Johnson",
		Region:   "Northwest",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Northwest", updated.Region)
	assert.False(t, updated.IsActive)
}
