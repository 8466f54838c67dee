package models

// Customer as referenced by a booking. Owned by the customers table.
type Customer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IDCard string `json:"idCard"`
}

// Driver assigned to a booking.
type Driver struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IDCard string `json:"idCard"`
}

// Car snapshot joined into a booking. MeterReading is the odometer at the
// time the row was read, not at booking start.
type Car struct {
	ID                 int64  `json:"id"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
	Color              string `json:"color"`
	RegistrationNumber string `json:"registrationNumber"`
	ChassisNumber      string `json:"chassisNumber"`
	EngineNumber       string `json:"engineNumber"`
	MeterReading       int64  `json:"meterReading"`
	StakeholderID      *int64 `json:"stakeholderId,omitempty"`
}

// Trip holds the schedule part of a booking. Dates are YYYY-MM-DD strings,
// times are HH:MM. ActualEndDate/EndTime stay empty until the booking ends.
type Trip struct {
	Type          string `json:"type"`
	City          string `json:"city,omitempty"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	ActualEndDate string `json:"actualEndDate,omitempty"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime,omitempty"`
}

// Billing holds the financial part of a booking. Remaining is derived and
// recomputed whenever billing fields change, never stored independently.
type Billing struct {
	TotalAmount        float64 `json:"totalAmount"`
	AdvancePaid        float64 `json:"advancePaid"`
	DiscountPercentage float64 `json:"discountPercentage"`
	DiscountReference  string  `json:"discountReference,omitempty"`
	Remaining          float64 `json:"remaining"`
}

// Booking is a rental transaction linking a customer, car and driver over a
// trip date range.
type Booking struct {
	ID                 int64    `json:"id"`
	Status             string   `json:"status"`
	Customer           Customer `json:"customer"`
	Car                Car      `json:"car"`
	Driver             Driver   `json:"driver"`
	Trip               Trip     `json:"trip"`
	Billing            Billing  `json:"billing"`
	FinalMeterReading  *int64   `json:"finalMeterReading,omitempty"`
	CancellationReason string   `json:"cancellationReason,omitempty"`
	CreatedAt          string   `json:"createdAt,omitempty"`
	CreatedBy          string   `json:"createdBy,omitempty"`
	UpdatedAt          string   `json:"updatedAt,omitempty"`
	LastModifiedBy     string   `json:"lastModifiedBy,omitempty"`
}

// EndRequest carries the fields required to complete a booking.
type EndRequest struct {
	ActualEndDate     string `json:"actualEndDate"`
	EndTime           string `json:"endTime"`
	FinalMeterReading *int64 `json:"finalMeterReading"`
}

// CancelRequest carries the mandatory cancellation reason.
type CancelRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// BookingPatch supports PATCH-style edits via key presence. Only active
// bookings accept a patch.
type BookingPatch struct {
	TripType           *string  `json:"tripType"`
	City               *string  `json:"city"`
	StartDate          *string  `json:"startDate"`
	EndDate            *string  `json:"endDate"`
	StartTime          *string  `json:"startTime"`
	MeterReading       *int64   `json:"meterReading"`
	TotalAmount        *float64 `json:"totalAmount"`
	AdvancePaid        *float64 `json:"advancePaid"`
	DiscountPercentage *float64 `json:"discountPercentage"`
	DiscountReference  *string  `json:"discountReference"`
}
