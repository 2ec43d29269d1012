package domain

// Metric extracts one optional numeric field from a record.
type Metric[T any] struct {
	Name  string
	Value func(T) *float64
}

// Totals holds per-metric sums and the number of records that lacked
// each metric.
type Totals struct {
	Sums    map[string]float64
	Missing map[string]int
}

// Sum returns the total for name, or zero if the metric is unknown.
func (t Totals) Sum(name string) float64 { return t.Sums[name] }

// MissingCount returns how many records lacked name.
func (t Totals) MissingCount(name string) int { return t.Missing[name] }

// Fold projects every record and accumulates the metrics in a single pass.
// A missing value adds nothing to its sum and one to its missing counter;
// other metrics of the same record are unaffected. Results keep input order.
func Fold[T, P any](records []T, metrics []Metric[T], project func(T) P) ([]P, Totals) {
	totals := Totals{
		Sums:    make(map[string]float64, len(metrics)),
		Missing: make(map[string]int, len(metrics)),
	}
	for _, m := range metrics {
		totals.Sums[m.Name] = 0
		totals.Missing[m.Name] = 0
	}

	projected := make([]P, 0, len(records))
	for _, rec := range records {
		for _, m := range metrics {
			if v := m.Value(rec); v != nil {
				totals.Sums[m.Name] += *v
			} else {
				totals.Missing[m.Name]++
			}
		}
		projected = append(projected, project(rec))
	}

	return projected, totals
}

// RatingMetric adapts a nullable rating field into a fold metric.
func RatingMetric[T any](name string, field func(T) *Rating) Metric[T] {
	return Metric[T]{
		Name: name,
		Value: func(rec T) *float64 {
			r := field(rec)
			if r == nil {
				return nil
			}
			v := float64(r.Uint())
			return &v
		},
	}
}
