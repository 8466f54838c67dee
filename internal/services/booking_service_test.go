package services

import (
	"database/sql/driver"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
	"carrental-backend/internal/repositories"
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

func bookingRowWithStatus(status string) []driver.Value {
	return bookingRowWithMeter(status, 52000)
}

func bookingRowWithMeter(status string, meter int64) []driver.Value {
	return []driver.Value{
		int64(1), status,
		int64(10), "Ahmed Khan", "+92 300 1234567", "35202-1234567-1",
		int64(7), "Toyota Corolla", int64(2022), "White",
		"ABC-123", "CH-9001", "EN-5001", meter, nil,
		int64(3), "Bilal", "+92 301 7654321", "35202-7654321-9",
		domain.TripWithinCity, "",
		"2026-08-10", "2026-08-14", "",
		"09:00", "",
		float64(5000), float64(2000), float64(10), "",
		nil, "",
		"2026-08-09 11:30:00", "admin", "2026-08-09 11:30:00", "admin",
	}
}

func newService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		CarRepo:     repositories.CarRepository{DB: db},
		DB:          db,
	}
	return svc, mock, func() { db.Close() }
}

func expectBookingByID(mock sqlmock.Sqlmock, status string) {
	mock.ExpectQuery("FROM bookings b").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(bookingRowWithStatus(status)...))
}

func TestEndBookingSuccess(t *testing.T) {
	svc, mock, done := newService(t)
	defer done()

	expectBookingByID(mock, domain.StatusActive)
	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE cars").WillReturnResult(sqlmock.NewResult(0, 1))
	expectBookingByID(mock, domain.StatusCompleted)

	meter := int64(52450)
	got, err := svc.EndBooking(1, models.EndRequest{
		ActualEndDate:     "2026-08-13",
		EndTime:           "18:30",
		FinalMeterReading: &meter,
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEndBookingStaleTransition(t *testing.T) {
	svc, mock, done := newService(t)
	defer done()

	// Guarded UPDATE loses the race: zero rows, then the reload shows the
	// booking already cancelled by the other request.
	expectBookingByID(mock, domain.StatusActive)
	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 0))
	expectBookingByID(mock, domain.StatusCancelled)

	meter := int64(52450)
	_, err := svc.EndBooking(1, models.EndRequest{
		ActualEndDate:     "2026-08-13",
		FinalMeterReading: &meter,
	}, "admin")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidState(err), "want InvalidStateError, got %v", err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEndBookingConcurrentEditConflict(t *testing.T) {
	svc, mock, done := newService(t)
	defer done()

	// Zero rows but the reload still shows active: a concurrent edit bumped
	// the row between read and guarded write. Not a terminal state, so the
	// caller gets a retryable conflict instead of an invalid-state error.
	expectBookingByID(mock, domain.StatusActive)
	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 0))
	expectBookingByID(mock, domain.StatusActive)

	meter := int64(52450)
	_, err := svc.EndBooking(1, models.EndRequest{
		ActualEndDate:     "2026-08-13",
		FinalMeterReading: &meter,
	}, "admin")
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err), "want ConflictError, got %v", err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEndBookingRejectsCompleted(t *testing.T) {
	svc, mock, done := newService(t)
	defer done()

	expectBookingByID(mock, domain.StatusCompleted)

	meter := int64(52450)
	_, err := svc.EndBooking(1, models.EndRequest{
		ActualEndDate:     "2026-08-13",
		FinalMeterReading: &meter,
	}, "admin")
	assert.True(t, domain.IsInvalidState(err), "want InvalidStateError, got %v", err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingRequiresReason(t *testing.T) {
	svc, mock, done := newService(t)
	defer done()

	// Validation fails before any UPDATE is attempted.
	expectBookingByID(mock, domain.StatusActive)

	_, err := svc.CancelBooking(1, models.CancelRequest{CancellationReason: "   "}, "admin")
	assert.True(t, domain.IsValidation(err), "want ValidationError, got %v", err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingSuccess(t *testing.T) {
	svc, mock, done := newService(t)
	defer done()

	expectBookingByID(mock, domain.StatusActive)
	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	expectBookingByID(mock, domain.StatusCancelled)

	got, err := svc.CancelBooking(1, models.CancelRequest{CancellationReason: "customer changed plans"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEditBookingPersistsMeterReading(t *testing.T) {
	svc, mock, done := newService(t)
	defer done()

	expectBookingByID(mock, domain.StatusActive)
	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE cars").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM bookings b").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(bookingRowWithMeter(domain.StatusActive, 60000)...))

	meter := int64(60000)
	got, err := svc.EditBooking(1, models.BookingPatch{MeterReading: &meter}, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(60000), got.Car.MeterReading)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEditBookingWithoutMeterSkipsCarWrite(t *testing.T) {
	svc, mock, done := newService(t)
	defer done()

	// Only the booking row is touched; a stray car UPDATE would fail the
	// unmatched-expectation check.
	expectBookingByID(mock, domain.StatusActive)
	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	expectBookingByID(mock, domain.StatusActive)

	total := 8000.0
	got, err := svc.EditBooking(1, models.BookingPatch{TotalAmount: &total}, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(52000), got.Car.MeterReading)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingRejectsCarOnActiveBooking(t *testing.T) {
	svc, mock, done := newService(t)
	defer done()

	mock.ExpectQuery("FROM cars").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "model", "year", "color", "registration_number",
			"chassis_number", "engine_number", "meter_reading", "stakeholder_id",
		}).AddRow(int64(7), "Toyota Corolla", int64(2022), "White",
			"ABC-123", "CH-9001", "EN-5001", int64(52000), nil))
	mock.ExpectQuery("FROM bookings b").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(bookingRowWithStatus(domain.StatusActive)...))

	_, err := svc.CreateBooking(models.Booking{
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
	}, "admin")
	assert.True(t, domain.IsConflict(err), "want ConflictError, got %v", err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookingsRejectsUnknownStatus(t *testing.T) {
	svc, _, done := newService(t)
	defer done()

	_, err := svc.ListBookings("archived", BookingQuery{})
	assert.True(t, domain.IsValidation(err), "want ValidationError, got %v", err)
}
