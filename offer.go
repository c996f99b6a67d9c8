package qualoffer

import (
	"math"
	"slices"

	"github.com/Rhymond/go-money"
	"github.com/montanaflynn/stats"
)

// Offer is a computed qualifying offer.
type Offer struct {
	// Value is the mean of the averaged salaries, in dollars.
	Value float64

	// Count is the number of salaries averaged. It is less than the
	// requested size when fewer valid salaries exist.
	Count int
}

// Display formats the offer as US dollars with thousands separators,
// rounded to the cent (e.g. "$15,210,500.00").
func (o *Offer) Display() string {
	cents := int64(math.Round(o.Value * 100))
	return money.New(cents, money.USD).Display()
}

// TopSalaries returns the n highest salaries in descending order.
// All salaries are returned when there are fewer than n. The input is not modified.
func TopSalaries(salaries []Salary, n int) []Salary {
	sorted := slices.Clone(salaries)
	slices.SortFunc(sorted, func(a, b Salary) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// ComputeOffer returns the mean of the n highest salaries.
// Returns EINVALID when n is not positive and ENOTFOUND when there are no
// salaries to average.
func ComputeOffer(salaries []Salary, n int) (*Offer, error) {
	if n <= 0 {
		return nil, Errorf(EINVALID, "offer size must be positive, got %d", n)
	}
	if len(salaries) == 0 {
		return nil, Errorf(ENOTFOUND, "no valid salary records to compute an offer from")
	}

	top := TopSalaries(salaries, n)
	data := make(stats.Float64Data, len(top))
	for i, s := range top {
		data[i] = float64(s)
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, Errorf(EINTERNAL, "failed to average salaries: %v", err)
	}

	return &Offer{Value: mean, Count: len(top)}, nil
}
