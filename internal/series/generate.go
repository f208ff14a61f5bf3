package series

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/iwvelando/kpi-dashboard/pkg/datetime"
	"github.com/iwvelando/kpi-dashboard/pkg/mathutil"
)

// pcgStream is the fixed second PCG word; only the seed varies between runs.
const pcgStream = 0x9e3779b97f4a7c15

// Generate builds one record per calendar day in [start, end] from a PCG
// stream seeded by seed. Metrics are drawn column by column: every revenue
// value first, then profit, then conversion rate. Identical arguments always
// produce an identical series.
func Generate(seed int64, start, end time.Time, bounds Bounds) (Series, error) {
	start, end = datetime.Truncate(start), datetime.Truncate(end)
	if start.After(end) {
		return nil, fmt.Errorf("start date %s is after end date %s",
			datetime.Format(start), datetime.Format(end))
	}
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bounds: %w", err)
	}

	days := datetime.DaysInclusive(start, end)
	rng := rand.New(rand.NewPCG(uint64(seed), pcgStream))

	out := make(Series, days)
	for i := range out {
		out[i].Date = start.AddDate(0, 0, i)
	}
	for i := range out {
		out[i].Revenue = drawInt(rng, bounds.Revenue)
	}
	for i := range out {
		out[i].Profit = drawInt(rng, bounds.Profit)
	}
	for i := range out {
		out[i].ConversionRate = mathutil.Round(drawFloat(rng, bounds.ConversionRate))
	}
	return out, nil
}

func drawInt(rng *rand.Rand, r IntRange) int {
	return r.Min + rng.IntN(r.Max-r.Min)
}

func drawFloat(rng *rand.Rand, r FloatRange) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
