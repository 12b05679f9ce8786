package domain

const HoursPerDay = 24

// Summary is a read-only snapshot of the aggregated statistics, ready for rendering.
type Summary struct {
	TotalRequests     int
	UniqueAddresses   int
	UniquePaths       int
	ResponseSizes     int
	TotalResponseSize int64
	AvgResponseSize   float64
	Statuses          []Status
	Methods           []Method
	Addresses         []Address
	URLs              []URL
	Hourly            [HoursPerDay]int
	AddressLimit      int
	URLLimit          int
}

func NewSummary(totalRequests, uniqueAddresses, uniquePaths int) *Summary {
	return &Summary{
		TotalRequests:   totalRequests,
		UniqueAddresses: uniqueAddresses,
		UniquePaths:     uniquePaths,
	}
}

// HourlyTotal is the number of records that were placed into an hour bucket.
func (s *Summary) HourlyTotal() int {
	total := 0
	for _, c := range s.Hourly {
		total += c
	}

	return total
}

type URL struct {
	Name     string
	Quantity int
}

func NewURL(name string, quantity int) URL {
	return URL{
		Name:     name,
		Quantity: quantity,
	}
}

type Status struct {
	Code     string
	Quantity int
}

func NewStatus(code string, quantity int) Status {
	return Status{
		Code:     code,
		Quantity: quantity,
	}
}

type Method struct {
	Name     string
	Quantity int
}

func NewMethod(name string, quantity int) Method {
	return Method{
		Name:     name,
		Quantity: quantity,
	}
}

type Address struct {
	Name     string
	Quantity int
}

func NewAddress(name string, quantity int) Address {
	return Address{
		Name:     name,
		Quantity: quantity,
	}
}
