package animals

import (
	"context"
	"testing"
	"time"

	"boi-na-nuvem/internal/platform/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items     []Animal
	locations []AnimalLocation
}

func (r *testRepo) Create(_ context.Context, a Animal) error {
	r.items = append(r.items, a)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Animal, error) {
	for _, a := range r.items {
		if a.ID == id && a.DeletedAt == nil {
			return a, nil
		}
	}
	return Animal{}, ErrNotFound
}

func (r *testRepo) List(context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.items))
	for _, a := range r.items {
		if a.DeletedAt == nil {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) AddLocation(_ context.Context, l AnimalLocation) error {
	r.locations = append(r.locations, l)
	return nil
}

func (r *testRepo) ListLocations(_ context.Context, animalID string) ([]AnimalLocation, error) {
	out := make([]AnimalLocation, 0)
	for _, l := range r.locations {
		if l.AnimalID == animalID {
			out = append(out, l)
		}
	}
	return out, nil
}

var fixedNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{}
	svc := NewService(repo, idgen.New())
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func TestCreate_DefaultsAndIDs(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	father := "AN-77"
	a1, err := svc.Create(ctx, CreateInput{Name: "Mimosa", Phase: PhaseCow, Sex: SexFemale, PropertyID: "PR-1", FatherID: &father})
	require.NoError(t, err)
	a2, err := svc.Create(ctx, CreateInput{Name: "Trovão", Phase: PhaseBull, Sex: SexMale, PropertyID: "PR-1"})
	require.NoError(t, err)
	a3, err := svc.Create(ctx, CreateInput{Name: "Pintada", Phase: PhaseHeifer, PropertyID: "PR-2"})
	require.NoError(t, err)

	assert.Equal(t, "AN-1", a1.ID)
	assert.Equal(t, "AN-2", a2.ID)
	assert.Equal(t, "AN-3", a3.ID)
	assert.Equal(t, StatusActive, a1.Status)
	assert.Equal(t, "AN-77", *a1.Pedigree.FatherID)
	assert.Nil(t, a1.Pedigree.MotherID)
	assert.Equal(t, fixedNow, a1.CreatedAt)
}

func TestCreate_Validation(t *testing.T) {
	svc, repo := newTestService()
	future := fixedNow.AddDate(0, 0, 1)

	cases := []CreateInput{
		{Phase: PhaseCow, PropertyID: "PR-1"},
		{Name: "x", Phase: PhaseCow},
		{Name: "x", Phase: "ox", PropertyID: "PR-1"},
		{Name: "x", Phase: PhaseCow, Status: "lost", PropertyID: "PR-1"},
		{Name: "x", Phase: PhaseCow, Sex: "other", PropertyID: "PR-1"},
		{Name: "x", Phase: PhaseCow, WeightKg: -1, PropertyID: "PR-1"},
		{Name: "x", Phase: PhaseCow, BirthDate: &future, PropertyID: "PR-1"},
	}
	for i, in := range cases {
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidInput, "case %d", i)
	}
	assert.Empty(t, repo.items)
}

func TestList_SelectedProperty(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	repo.items = []Animal{
		{ID: "AN-1", PropertyID: "PR-1"},
		{ID: "AN-2", PropertyID: "PR-2"},
		{ID: "AN-3", PropertyID: "PR-1"},
		{ID: "AN-4", PropertyID: "PR-1", DeletedAt: &fixedNow},
	}

	got, err := svc.List(ctx, ListInput{SelectedPropertyID: "PR-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"AN-1", "AN-3"}, ids(got))

	got, err = svc.List(ctx, ListInput{SelectedPropertyID: "PR-1", AllSelected: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"AN-1", "AN-2", "AN-3"}, ids(got))

	got, err = svc.List(ctx, ListInput{SelectedPropertyID: "PR-9"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocations_SortedByEntryDate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Name: "Mimosa", Phase: PhaseCow, PropertyID: "PR-1"})
	require.NoError(t, err)

	later := fixedNow.AddDate(0, 1, 0)
	_, err = svc.RecordLocation(ctx, a.ID, LocationInput{LocationID: "pasto-2", EntryDate: later})
	require.NoError(t, err)
	exit := later
	l1, err := svc.RecordLocation(ctx, a.ID, LocationInput{LocationID: "pasto-1", EntryDate: fixedNow, ExitDate: &exit})
	require.NoError(t, err)
	assert.NotEmpty(t, l1.ID)

	got, err := svc.Locations(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "pasto-1", got[0].LocationID)
	assert.Equal(t, "pasto-2", got[1].LocationID)
}

func TestRecordLocation_Errors(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RecordLocation(ctx, "AN-404", LocationInput{LocationID: "x", EntryDate: fixedNow})
	assert.ErrorIs(t, err, ErrNotFound)

	before := fixedNow.Add(-time.Hour)
	_, err = svc.RecordLocation(ctx, "AN-1", LocationInput{LocationID: "x", EntryDate: fixedNow, ExitDate: &before})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RecordLocation(ctx, "AN-1", LocationInput{LocationID: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIndicators(t *testing.T) {
	assert.Equal(t, "Ativo", StatusActive.Indicator().Label)
	assert.Equal(t, "Touro", PhaseBull.Indicator().Label)
	assert.False(t, Status("lost").Valid())
	assert.NotEmpty(t, Status("lost").Indicator().Label)
}

func ids(items []Animal) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}
