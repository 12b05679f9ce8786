package stats

import (
	"github.com/es-debug/nginx-log-analyzer/internal/domain"
	"github.com/es-debug/nginx-log-analyzer/internal/timestamp"
)

// State accumulates statistics for one analysis run. It has a single writer
// and is read-only once ingestion is over, so it carries no lock.
type State struct {
	totalRequests int
	statuses      *Counter
	addresses     *Counter
	paths         *Counter
	methods       *Counter
	hourly        [domain.HoursPerDay]int
	sizes         []int64
}

func NewState() *State {
	return &State{
		statuses:  NewCounter(),
		addresses: NewCounter(),
		paths:     NewCounter(),
		methods:   NewCounter(),
		sizes:     make([]int64, 0),
	}
}

func (s *State) Accumulate(record domain.LogRecord) {
	s.totalRequests++
	s.statuses.Inc(record.StatusCode)
	s.addresses.Inc(record.ClientAddress)
	s.paths.Inc(record.Path)
	s.methods.Inc(record.Method)

	if hour, ok := timestamp.HourOf(record.Timestamp); ok {
		s.hourly[hour]++
	}

	if record.HasResponseSize && record.ResponseSize >= 0 {
		s.sizes = append(s.sizes, record.ResponseSize)
	}
}

func (s *State) TotalRequests() int {
	return s.totalRequests
}

func (s *State) Statuses() *Counter {
	return s.statuses
}

func (s *State) Addresses() *Counter {
	return s.addresses
}

func (s *State) Paths() *Counter {
	return s.paths
}

func (s *State) Methods() *Counter {
	return s.methods
}

func (s *State) Hourly() [domain.HoursPerDay]int {
	return s.hourly
}

// ResponseSizes returns a copy of the recorded sizes in input order.
func (s *State) ResponseSizes() []int64 {
	sizes := make([]int64, len(s.sizes))
	copy(sizes, s.sizes)

	return sizes
}

// Empty reports whether no record was accumulated.
func (s *State) Empty() bool {
	return s.totalRequests == 0
}

// Summary builds the report snapshot with at most addressLimit addresses and
// urlLimit paths in the ranked views.
func (s *State) Summary(addressLimit, urlLimit int) *domain.Summary {
	summary := domain.NewSummary(s.totalRequests, s.addresses.Len(), s.paths.Len())
	summary.AddressLimit = addressLimit
	summary.URLLimit = urlLimit
	summary.Hourly = s.hourly

	sizes := s.ResponseSizes()
	for _, size := range sizes {
		summary.TotalResponseSize += size
	}

	summary.ResponseSizes = len(sizes)
	if len(sizes) > 0 {
		summary.AvgResponseSize = float64(summary.TotalResponseSize) / float64(len(sizes))
	}

	for _, e := range s.statuses.ByKey() {
		summary.Statuses = append(summary.Statuses, domain.NewStatus(e.Key, e.Count))
	}

	for _, e := range s.methods.MostCommon(0) {
		summary.Methods = append(summary.Methods, domain.NewMethod(e.Key, e.Count))
	}

	for _, e := range s.addresses.MostCommon(addressLimit) {
		summary.Addresses = append(summary.Addresses, domain.NewAddress(e.Key, e.Count))
	}

	for _, e := range s.paths.MostCommon(urlLimit) {
		summary.URLs = append(summary.URLs, domain.NewURL(e.Key, e.Count))
	}

	return summary
}
