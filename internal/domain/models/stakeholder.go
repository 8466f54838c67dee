package models

// Stakeholder is an external car owner. Commission lives here, not on the
// car: a car's commission rate is always its owner's rate.
type Stakeholder struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Phone                string  `json:"phone,omitempty"`
	CommissionPercentage float64 `json:"commissionPercentage"`
	Cars                 []Car   `json:"cars,omitempty"`
}
