package islands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islandtracker/islandtracker-backend/internal/repo"
	"github.com/islandtracker/islandtracker-backend/pkg/enums"
	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
)

type stubVisitCounter struct {
	counts map[string]int64
	err    error
}

func (s stubVisitCounter) CountByIsland(_ context.Context, islandID string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.counts[islandID], nil
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newSeededService(t *testing.T, counter stubVisitCounter) (Service, *Repository) {
	t.Helper()
	islandRepo := NewRepository(repo.NewSQLiteTestDB(t))
	written, err := SeedSamples(context.Background(), islandRepo, testNow)
	require.NoError(t, err)
	require.Equal(t, 10, written)

	svc, err := NewService(ServiceParams{
		Repo:   islandRepo,
		Visits: counter,
		Now:    func() time.Time { return testNow },
	})
	require.NoError(t, err)
	return svc, islandRepo
}

func names(list []IslandDTO) []string {
	out := make([]string, 0, len(list))
	for _, island := range list {
		out = append(out, island.Name)
	}
	return out
}

func TestSeedSamplesOnlyFillsEmptyCatalog(t *testing.T) {
	islandRepo := NewRepository(repo.NewSQLiteTestDB(t))
	ctx := context.Background()

	written, err := SeedSamples(ctx, islandRepo, testNow)
	require.NoError(t, err)
	assert.Equal(t, 10, written)

	written, err = SeedSamples(ctx, islandRepo, testNow)
	require.NoError(t, err)
	assert.Zero(t, written)

	count, err := islandRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 10, count)
}

func TestListWithoutFiltersKeepsSeedOrder(t *testing.T) {
	svc, _ := newSeededService(t, stubVisitCounter{})

	list, err := svc.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 10)
	assert.Equal(t, "Malé", list[0].Name)
	assert.Equal(t, "Thulusdhoo", list[9].Name)
	assert.Equal(t, []string{"capital", "city", "urban"}, list[0].Tags)
	require.NotNil(t, list[0].Population)
	assert.Equal(t, 133412, *list[0].Population)
	assert.Nil(t, list[2].Population)
}

func TestListFilters(t *testing.T) {
	svc, _ := newSeededService(t, stubVisitCounter{})
	ctx := context.Background()

	cases := []struct {
		name   string
		filter ListFilter
		want   []string
	}{
		{name: "all sentinel", filter: ListFilter{Type: "all"}, want: nil},
		{name: "type", filter: ListFilter{Type: "resort"}, want: []string{"Kuramathi", "Baros", "Veligandu"}},
		{name: "atoll case insensitive", filter: ListFilter{Atoll: "alifu"}, want: []string{"Kuramathi", "Veligandu"}},
		{name: "search by name", filter: ListFilter{Search: "HULHU"}, want: []string{"Hulhumalé"}},
		{name: "search by atoll", filter: ListFilter{Search: "gnavi"}, want: []string{"Fuvahmulah"}},
		{name: "search by tag", filter: ListFilter{Search: "surf"}, want: []string{"Thulusdhoo"}},
		{name: "search unions fields", filter: ListFilter{Search: "artificial"}, want: []string{"Hulhumalé", "Thilafushi"}},
		{name: "combined", filter: ListFilter{Type: "resort", Atoll: "Kaafu", Search: "luxury"}, want: []string{"Baros"}},
		{name: "no match", filter: ListFilter{Search: "atlantis"}, want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := svc.List(ctx, tc.filter)
			require.NoError(t, err)
			if tc.want == nil {
				assert.Len(t, list, 10)
				return
			}
			assert.Equal(t, tc.want, names(list))
		})
	}
}

func TestListRejectsUnknownType(t *testing.T) {
	svc, _ := newSeededService(t, stubVisitCounter{})
	_, err := svc.List(context.Background(), ListFilter{Type: "volcanic"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newSeededService(t, stubVisitCounter{})
	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
	assert.Equal(t, "Island not found", pkgerrors.As(err).Message())
}

func TestCreateAndUpdateReplaceFields(t *testing.T) {
	svc, _ := newSeededService(t, stubVisitCounter{})
	ctx := context.Background()
	order := 2
	desc := "Sandbank"

	created, err := svc.Create(ctx, IslandInput{
		Name:          " Vaadhoo ",
		Atoll:         "Raa",
		Lat:           5.5,
		Lng:           73.0,
		Type:          "uninhabited",
		Description:   &desc,
		Tags:          []string{"bioluminescence", " "},
		IsFeatured:    true,
		FeaturedOrder: &order,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Vaadhoo", created.Name)
	assert.Equal(t, enums.IslandTypeUninhabited, created.Type)
	assert.Equal(t, []string{"bioluminescence"}, created.Tags)
	assert.Equal(t, []string{}, created.Photos)
	assert.Equal(t, testNow, created.CreatedAt)

	updated, err := svc.Update(ctx, created.ID, IslandInput{
		Name:  "Vaadhoo",
		Atoll: "Raa",
		Lat:   5.6,
		Lng:   73.1,
		Type:  "inhabited",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, enums.IslandTypeInhabited, updated.Type)
	assert.False(t, updated.IsFeatured)
	assert.Nil(t, updated.FeaturedOrder)
	assert.Nil(t, updated.Description)
	assert.Equal(t, []string{}, updated.Tags)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.6, fetched.Lat)
	assert.True(t, fetched.CreatedAt.Equal(testNow))
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc, _ := newSeededService(t, stubVisitCounter{})
	_, err := svc.Create(context.Background(), IslandInput{Name: "X", Atoll: "Y", Type: "all"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestUpdateUnknownIsland(t *testing.T) {
	svc, _ := newSeededService(t, stubVisitCounter{})
	_, err := svc.Update(context.Background(), "missing", IslandInput{Name: "X", Atoll: "Y", Type: "resort"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestFeaturedOrderingAndCap(t *testing.T) {
	svc, _ := newSeededService(t, stubVisitCounter{})
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		input := IslandInput{Name: "Featured", Atoll: "Lhaviyani", Type: "resort", IsFeatured: true}
		if i%2 == 0 {
			order := 20 - i
			input.FeaturedOrder = &order
		}
		_, err := svc.Create(ctx, input)
		require.NoError(t, err)
	}

	list, err := svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, list, FeaturedLimit)
	for i := 0; i < 6; i++ {
		require.NotNil(t, list[i].FeaturedOrder)
	}
	assert.Equal(t, 10, *list[0].FeaturedOrder)
	assert.Equal(t, 20, *list[5].FeaturedOrder)
	for i := 6; i < FeaturedLimit; i++ {
		assert.Nil(t, list[i].FeaturedOrder)
	}
}

func TestDeleteBlockedByVisits(t *testing.T) {
	svc, islandRepo := newSeededService(t, stubVisitCounter{})
	ctx := context.Background()
	list, err := svc.List(ctx, ListFilter{Search: "Malé"})
	require.NoError(t, err)
	male := list[0]

	blocked, err := NewService(ServiceParams{Repo: islandRepo, Visits: stubVisitCounter{counts: map[string]int64{male.ID: 3}}})
	require.NoError(t, err)

	err = blocked.Delete(ctx, male.ID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	assert.Equal(t, pkgerrors.CodePrecondition, typed.Code())
	assert.Equal(t, "Cannot delete island with 3 visits", typed.Message())

	_, err = svc.Get(ctx, male.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, male.ID))
	_, err = svc.Get(ctx, male.ID)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	err = svc.Delete(ctx, male.ID)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestDeletePropagatesCounterFailure(t *testing.T) {
	svc, _ := newSeededService(t, stubVisitCounter{err: errors.New("boom")})
	list, err := svc.List(context.Background(), ListFilter{})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), list[0].ID)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInternal))
}

func TestFindByIDsSkipsUnknown(t *testing.T) {
	_, islandRepo := newSeededService(t, stubVisitCounter{})
	ctx := context.Background()
	all, err := islandRepo.List(ctx, ListQuery{})
	require.NoError(t, err)

	found, err := islandRepo.FindByIDs(ctx, []string{all[1].ID, "missing", all[0].ID})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Malé", found[0].Name)

	empty, err := islandRepo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
