package islands

import (
	"context"
	"fmt"
	"time"

	"github.com/islandtracker/islandtracker-backend/pkg/db/models"
	dbtypes "github.com/islandtracker/islandtracker-backend/pkg/db/types"
	"github.com/islandtracker/islandtracker-backend/pkg/enums"
)

type seedRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, list []models.Island) error
}

// SeedSamples fills an empty catalog with the reference islands and returns how
// many rows were written. A non-empty catalog is left untouched.
func SeedSamples(ctx context.Context, repo seedRepository, now time.Time) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count islands: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	list := SampleIslands(now)
	if err := repo.CreateBatch(ctx, list); err != nil {
		return 0, fmt.Errorf("seed islands: %w", err)
	}
	return len(list), nil
}

// SampleIslands returns the reference catalog. Creation times are staggered by
// one second so listing order follows the slice.
func SampleIslands(now time.Time) []models.Island {
	base := now.UTC()
	list := []models.Island{
		sample("Malé", "Kaafu", 4.1755, 73.5093, enums.IslandTypeInhabited, intPtr(133412), "Capital city of the Maldives", "capital", "city", "urban"),
		sample("Hulhumalé", "Kaafu", 4.2100, 73.5555, enums.IslandTypeInhabited, intPtr(50000), "Artificial island built to meet housing needs", "artificial", "urban", "housing"),
		sample("Kuramathi", "Alifu", 4.2655, 72.9897, enums.IslandTypeResort, nil, "Luxury resort island with water villas", "resort", "luxury", "diving"),
		sample("Maafushi", "Kaafu", 3.9432, 73.4881, enums.IslandTypeInhabited, intPtr(3025), "Popular local island for tourism", "local", "tourism", "budget"),
		sample("Baros", "Kaafu", 4.2826, 73.4273, enums.IslandTypeResort, nil, "Small luxury resort island", "resort", "luxury", "romantic"),
		sample("Fuvahmulah", "Gnaviyani", -0.2986, 73.4239, enums.IslandTypeInhabited, intPtr(8055), "Unique island with freshwater lakes", "local", "nature", "lakes"),
		sample("Addu City", "Addu", -0.6301, 73.1579, enums.IslandTypeInhabited, intPtr(18000), "Southernmost atoll with connected islands", "city", "history", "beaches"),
		sample("Veligandu", "Alifu", 4.2979, 72.9651, enums.IslandTypeResort, nil, "Popular resort with pristine beaches", "resort", "honeymoon", "beaches"),
		sample("Thilafushi", "Kaafu", 4.1824, 73.4320, enums.IslandTypeIndustrial, nil, "Artificial island used for industry and waste management", "industrial", "artificial"),
		sample("Thulusdhoo", "Kaafu", 4.3744, 73.6482, enums.IslandTypeInhabited, intPtr(1400), "Known for surfing and Coca-Cola factory", "local", "surfing", "coke"),
	}
	for i := range list {
		list[i].CreatedAt = base.Add(time.Duration(i) * time.Second)
	}
	return list
}

func sample(name, atoll string, lat, lng float64, islandType enums.IslandType, population *int, description string, tags ...string) models.Island {
	return models.Island{
		Name:        name,
		Atoll:       atoll,
		Lat:         lat,
		Lng:         lng,
		Type:        islandType,
		Population:  population,
		Description: &description,
		Tags:        dbtypes.StringArray(tags),
		Photos:      dbtypes.StringArray{},
	}
}

func intPtr(v int) *int { return &v }
