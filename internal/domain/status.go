package domain

// Booking statuses. Active bookings are the only mutable ones; completed and
// cancelled are terminal.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Trip types. City is required only for out-of-city trips.
const (
	TripWithinCity = "within-city"
	TripOutOfCity  = "out-of-city"
)

// ExpenseCategoryCar is the one expense category tied to a car instead of an
// office.
const ExpenseCategoryCar = "Car"

func IsValidStatus(s string) bool {
	return s == StatusActive || s == StatusCompleted || s == StatusCancelled
}

func IsTerminalStatus(s string) bool {
	return s == StatusCompleted || s == StatusCancelled
}

func IsValidTripType(s string) bool {
	return s == TripWithinCity || s == TripOutOfCity
}
