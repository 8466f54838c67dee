package domain

import (
	"regexp"
	"strings"

	"carrental-backend/internal/domain/models"
)

// Entity forms share one rule-table validator instead of inline procedural
// checks scattered per handler.

var (
	phonePattern  = regexp.MustCompile(`^\+?[0-9][0-9\- ]{6,19}$`)
	idCardPattern = regexp.MustCompile(`^[0-9]{5}-[0-9]{7}-[0-9]$`)
)

type fieldRule struct {
	Field    string
	Value    string
	Required bool
	Pattern  *regexp.Regexp
	Msg      string
}

func checkRules(rules []fieldRule) error {
	for _, r := range rules {
		v := strings.TrimSpace(r.Value)
		if v == "" {
			if r.Required {
				return ValidationError{Field: r.Field, Msg: "required"}
			}
			continue
		}
		if r.Pattern != nil && !r.Pattern.MatchString(v) {
			return ValidationError{Field: r.Field, Msg: r.Msg}
		}
	}
	return nil
}

func ValidateCustomer(c models.Customer) error {
	return checkRules([]fieldRule{
		{Field: "name", Value: c.Name, Required: true},
		{Field: "phone", Value: c.Phone, Required: true, Pattern: phonePattern, Msg: "invalid phone number"},
		{Field: "idCard", Value: c.IDCard, Required: true, Pattern: idCardPattern, Msg: "format must be 00000-0000000-0"},
	})
}

func ValidateDriver(d models.Driver) error {
	return checkRules([]fieldRule{
		{Field: "name", Value: d.Name, Required: true},
		{Field: "phone", Value: d.Phone, Required: true, Pattern: phonePattern, Msg: "invalid phone number"},
		{Field: "idCard", Value: d.IDCard, Required: true, Pattern: idCardPattern, Msg: "format must be 00000-0000000-0"},
	})
}

func ValidateEmployee(e models.Employee) error {
	return checkRules([]fieldRule{
		{Field: "name", Value: e.Name, Required: true},
		{Field: "phone", Value: e.Phone, Required: true, Pattern: phonePattern, Msg: "invalid phone number"},
		{Field: "idCard", Value: e.IDCard, Required: true, Pattern: idCardPattern, Msg: "format must be 00000-0000000-0"},
	})
}

func ValidateStakeholder(s models.Stakeholder) error {
	if err := checkRules([]fieldRule{
		{Field: "name", Value: s.Name, Required: true},
		{Field: "phone", Value: s.Phone, Pattern: phonePattern, Msg: "invalid phone number"},
	}); err != nil {
		return err
	}
	if s.CommissionPercentage < 0 || s.CommissionPercentage > 100 {
		return ValidationError{Field: "commissionPercentage", Msg: "must be between 0 and 100"}
	}
	return nil
}

func ValidateCar(c models.Car) error {
	if err := checkRules([]fieldRule{
		{Field: "model", Value: c.Model, Required: true},
		{Field: "registrationNumber", Value: c.RegistrationNumber, Required: true},
	}); err != nil {
		return err
	}
	if c.Year != 0 && (c.Year < 1950 || c.Year > 2100) {
		return ValidationError{Field: "year", Msg: "out of range"}
	}
	if c.MeterReading < 0 {
		return ValidationError{Field: "meterReading", Msg: "must not be negative"}
	}
	return nil
}

// ValidateExpense enforces the category rule: car expenses must name a car,
// everything else must name an office.
func ValidateExpense(e models.Expense) error {
	if err := checkRules([]fieldRule{
		{Field: "title", Value: e.Title, Required: true},
		{Field: "category", Value: e.Category, Required: true},
		{Field: "date", Value: e.Date, Required: true},
	}); err != nil {
		return err
	}
	if e.Amount < 0 {
		return ValidationError{Field: "amount", Msg: "must not be negative"}
	}
	if e.Category == ExpenseCategoryCar {
		if e.CarID == nil || *e.CarID <= 0 {
			return ValidationError{Field: "carId", Msg: "required for car expenses"}
		}
	} else if strings.TrimSpace(e.Office) == "" {
		return ValidationError{Field: "office", Msg: "required for non-car expenses"}
	}
	return nil
}

// ValidateNewBooking checks the creation payload before it is persisted as an
// active booking.
func ValidateNewBooking(b models.Booking) error {
	if b.Customer.ID <= 0 {
		return ValidationError{Field: "customerId", Msg: "required"}
	}
	if b.Car.ID <= 0 {
		return ValidationError{Field: "carId", Msg: "required"}
	}
	if b.Driver.ID <= 0 {
		return ValidationError{Field: "driverId", Msg: "required"}
	}
	if !IsValidTripType(b.Trip.Type) {
		return ValidationError{Field: "tripType", Msg: "must be within-city or out-of-city"}
	}
	if b.Trip.Type == TripOutOfCity && strings.TrimSpace(b.Trip.City) == "" {
		return ValidationError{Field: "city", Msg: "required for out-of-city trips"}
	}
	if err := checkRules([]fieldRule{
		{Field: "startDate", Value: b.Trip.StartDate, Required: true},
		{Field: "endDate", Value: b.Trip.EndDate, Required: true},
	}); err != nil {
		return err
	}
	return ValidateBillingInput(b.Billing.TotalAmount, b.Billing.AdvancePaid, b.Billing.DiscountPercentage)
}
