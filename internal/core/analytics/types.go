package analytics

// Point is one (label, amount) pair of a revenue series.
type Point struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Result is the structured reply of the advanced analytics agent:
// narrative text, zero or one rendered charts, and the first rows of
// the underlying series.
type Result struct {
	Response string   `json:"response"`
	Charts   []string `json:"charts"`
	Data     []Point  `json:"data"`
}

// RevenueReader is the narrow read surface the analytics agent depends
// on. The persistence layer implements it; a static sample series
// stands in when no store is reachable.
type RevenueReader interface {
	FetchRevenueSeries() ([]Point, error)
}

// SampleRevenueSeries returns the demo revenue-by-salesperson series
// used whenever no live data source is available.
func SampleRevenueSeries() []Point {
	return []Point{
		{Name: "Emily Davis", Value: 61000},
		{Name: "Carol Williams", Value: 52000},
		{Name: "Alice Johnson", Value: 45000},
		{Name: "Bob Smith", Value: 38500},
		{Name: "Frank Miller", Value: 33500},
		{Name: "David Brown", Value: 29000},
	}
}

// StaticRevenueReader serves SampleRevenueSeries. It is the degraded
// mode data source and the fixture the tests pin their numbers to.
type StaticRevenueReader struct{}

func (StaticRevenueReader) FetchRevenueSeries() ([]Point, error) {
	return SampleRevenueSeries(), nil
}
