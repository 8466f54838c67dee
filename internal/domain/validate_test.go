package domain

import (
	"testing"

	"carrental-backend/internal/domain/models"
)

func carID(v int64) *int64 { return &v }

func TestValidateCustomer(t *testing.T) {
	ok := models.Customer{Name: "Ahmed", Phone: "0300-1234567", IDCard: "35202-1234567-1"}
	if err := ValidateCustomer(ok); err != nil {
		t.Fatalf("valid customer rejected: %v", err)
	}

	bad := ok
	bad.IDCard = "352021234567"
	if err := ValidateCustomer(bad); !IsValidation(err) {
		t.Fatalf("malformed id card accepted: %v", err)
	}

	bad = ok
	bad.Phone = "abc"
	if err := ValidateCustomer(bad); !IsValidation(err) {
		t.Fatalf("malformed phone accepted: %v", err)
	}

	bad = ok
	bad.Name = "  "
	if err := ValidateCustomer(bad); !IsValidation(err) {
		t.Fatalf("blank name accepted: %v", err)
	}
}

func TestValidateExpense_CategoryRule(t *testing.T) {
	carExp := models.Expense{Title: "Oil change", Amount: 3500, Date: "2026-08-10", Category: ExpenseCategoryCar, CarID: carID(3)}
	if err := ValidateExpense(carExp); err != nil {
		t.Fatalf("valid car expense rejected: %v", err)
	}

	carExp.CarID = nil
	if err := ValidateExpense(carExp); !IsValidation(err) {
		t.Fatalf("car expense without carId accepted: %v", err)
	}

	officeExp := models.Expense{Title: "Rent", Amount: 50000, Date: "2026-08-01", Category: "Office", Office: "Main Branch"}
	if err := ValidateExpense(officeExp); err != nil {
		t.Fatalf("valid office expense rejected: %v", err)
	}

	officeExp.Office = ""
	if err := ValidateExpense(officeExp); !IsValidation(err) {
		t.Fatalf("office expense without office accepted: %v", err)
	}
}

func TestValidateStakeholder_CommissionRange(t *testing.T) {
	s := models.Stakeholder{Name: "Owner", CommissionPercentage: 15}
	if err := ValidateStakeholder(s); err != nil {
		t.Fatalf("valid stakeholder rejected: %v", err)
	}
	s.CommissionPercentage = 120
	if err := ValidateStakeholder(s); !IsValidation(err) {
		t.Fatalf("commission above 100 accepted: %v", err)
	}
}

func TestValidateNewBooking(t *testing.T) {
	b := models.Booking{
		Customer: models.Customer{ID: 1},
		Car:      models.Car{ID: 2},
		Driver:   models.Driver{ID: 3},
		Trip:     models.Trip{Type: TripWithinCity, StartDate: "2026-08-01", EndDate: "2026-08-03"},
		Billing:  models.Billing{TotalAmount: 5000, AdvancePaid: 1000, DiscountPercentage: 0},
	}
	if err := ValidateNewBooking(b); err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}

	bad := b
	bad.Trip.Type = TripOutOfCity
	if err := ValidateNewBooking(bad); !IsValidation(err) {
		t.Fatalf("out-of-city booking without city accepted: %v", err)
	}

	bad = b
	bad.Driver.ID = 0
	if err := ValidateNewBooking(bad); !IsValidation(err) {
		t.Fatalf("booking without driver accepted: %v", err)
	}

	bad = b
	bad.Billing.DiscountPercentage = -1
	if err := ValidateNewBooking(bad); !IsValidation(err) {
		t.Fatalf("negative discount accepted: %v", err)
	}
}
