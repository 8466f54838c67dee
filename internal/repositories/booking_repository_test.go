package repositories

import (
	"database/sql/driver"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
)

var bookingColumns = []string{
	"b.id", "b.status",
	"cu.id", "cu.name", "cu.phone", "cu.id_card",
	"ca.id", "ca.model", "ca.year", "ca.color",
	"ca.registration_number", "ca.chassis_number",
	"ca.engine_number", "ca.meter_reading", "ca.stakeholder_id",
	"dr.id", "dr.name", "dr.phone", "dr.id_card",
	"b.trip_type", "b.city",
	"b.start_date", "b.end_date", "b.actual_end_date",
	"b.start_time", "b.end_time",
	"b.total_amount", "b.advance_paid", "b.discount_percentage", "b.discount_reference",
	"b.final_meter_reading", "b.cancellation_reason",
	"b.created_at", "b.created_by", "b.updated_at", "b.last_modified_by",
}

func bookingRow() []driver.Value {
	return []driver.Value{
		int64(1), domain.StatusActive,
		int64(10), "Ahmed Khan", "+92 300 1234567", "35202-1234567-1",
		int64(7), "Toyota Corolla", int64(2022), "White",
		"ABC-123", "CH-9001", "EN-5001", int64(52000), nil,
		int64(3), "Bilal", "+92 301 7654321", "35202-7654321-9",
		domain.TripOutOfCity, "Lahore",
		"2026-08-10", "2026-08-14", "",
		"09:00", "",
		float64(5000), float64(2000), float64(10), "",
		nil, "",
		"2026-08-09 11:30:00", "admin", "2026-08-09 11:30:00", "admin",
	}
}

func TestGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(bookingColumns).AddRow(bookingRow()...)
	mock.ExpectQuery("FROM bookings b").WithArgs(int64(1)).WillReturnRows(rows)

	repo := BookingRepository{DB: db}
	b, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if b.Customer.Name != "Ahmed Khan" || b.Car.RegistrationNumber != "ABC-123" {
		t.Fatalf("joined fields not mapped: %+v", b)
	}
	if b.Status != domain.StatusActive {
		t.Fatalf("status = %q", b.Status)
	}
	// remaining = 5000*0.9 - 2000
	if b.Billing.Remaining != 2500 {
		t.Fatalf("remaining = %v, want 2500", b.Billing.Remaining)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings b").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	repo := BookingRepository{DB: db}
	if _, err := repo.GetByID(99); !domain.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestGetByIDRejectsNonPositiveID(t *testing.T) {
	// No query expected; the repo should short-circuit.
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := BookingRepository{DB: db}
	if _, err := repo.GetByID(0); !domain.IsNotFound(err) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(bookingColumns).AddRow(bookingRow()...)
	mock.ExpectQuery("FROM bookings b").
		WithArgs(domain.StatusActive).
		WillReturnRows(rows)

	repo := BookingRepository{DB: db}
	list, err := repo.List(domain.StatusActive)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMarkCompletedGuardedByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	meter := int64(52450)
	b := models.Booking{
		ID:                1,
		Status:            domain.StatusCompleted,
		Trip:              models.Trip{ActualEndDate: "2026-08-13", EndTime: "18:30"},
		FinalMeterReading: &meter,
	}

	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := BookingRepository{DB: db}
	affected, err := repo.MarkCompleted(b, "admin")
	if err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMarkCancelledZeroRowsWhenNotActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))

	b := models.Booking{ID: 1, Status: domain.StatusCancelled, CancellationReason: "customer changed plans"}

	repo := BookingRepository{DB: db}
	affected, err := repo.MarkCancelled(b, "admin")
	if err != nil {
		t.Fatalf("MarkCancelled: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected = %d, want 0", affected)
	}
}

func TestCreateFillsGeneratedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))

	b := models.Booking{
		Customer: models.Customer{ID: 10},
		Car:      models.Car{ID: 7},
		Driver:   models.Driver{ID: 3},
		Trip: models.Trip{
			Type:      domain.TripWithinCity,
			StartDate: "2026-08-10",
			EndDate:   "2026-08-14",
			StartTime: "09:00",
		},
		Billing: models.Billing{TotalAmount: 5000, AdvancePaid: 2000, DiscountPercentage: 10},
	}

	repo := BookingRepository{DB: db}
	if err := repo.Create(&b, "admin"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.ID != 42 {
		t.Fatalf("ID = %d, want 42", b.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
