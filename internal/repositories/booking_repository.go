package repositories

import (
	"database/sql"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
	"carrental-backend/internal/utils"
)

// BookingRepository wraps DB access for bookings. List and Get return rows
// joined with customer, car and driver; Remaining is always recomputed from
// the stored billing fields, never read from a column.
type BookingRepository struct {
	DB *sql.DB
}

const bookingSelect = `
	SELECT
		b.id,
		b.status,
		cu.id, COALESCE(cu.name,''), COALESCE(cu.phone,''), COALESCE(cu.id_card,''),
		ca.id, COALESCE(ca.model,''), COALESCE(ca.year,0), COALESCE(ca.color,''),
		COALESCE(ca.registration_number,''), COALESCE(ca.chassis_number,''),
		COALESCE(ca.engine_number,''), COALESCE(ca.meter_reading,0), ca.stakeholder_id,
		dr.id, COALESCE(dr.name,''), COALESCE(dr.phone,''), COALESCE(dr.id_card,''),
		COALESCE(b.trip_type,''),
		COALESCE(b.city,''),
		COALESCE(DATE_FORMAT(b.start_date, '%Y-%m-%d'),''),
		COALESCE(DATE_FORMAT(b.end_date, '%Y-%m-%d'),''),
		COALESCE(DATE_FORMAT(b.actual_end_date, '%Y-%m-%d'),''),
		COALESCE(b.start_time,''),
		COALESCE(b.end_time,''),
		COALESCE(b.total_amount,0),
		COALESCE(b.advance_paid,0),
		COALESCE(b.discount_percentage,0),
		COALESCE(b.discount_reference,''),
		b.final_meter_reading,
		COALESCE(b.cancellation_reason,''),
		COALESCE(DATE_FORMAT(b.created_at, '%Y-%m-%d %H:%i:%s'),''),
		COALESCE(b.created_by,''),
		COALESCE(DATE_FORMAT(b.updated_at, '%Y-%m-%d %H:%i:%s'),''),
		COALESCE(b.last_modified_by,'')
	FROM bookings b
	JOIN customers cu ON cu.id = b.customer_id
	JOIN cars ca ON ca.id = b.car_id
	JOIN drivers dr ON dr.id = b.driver_id
`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	var stakeholderID sql.NullInt64
	var finalMeter sql.NullInt64

	err := row.Scan(
		&b.ID,
		&b.Status,
		&b.Customer.ID, &b.Customer.Name, &b.Customer.Phone, &b.Customer.IDCard,
		&b.Car.ID, &b.Car.Model, &b.Car.Year, &b.Car.Color,
		&b.Car.RegistrationNumber, &b.Car.ChassisNumber,
		&b.Car.EngineNumber, &b.Car.MeterReading, &stakeholderID,
		&b.Driver.ID, &b.Driver.Name, &b.Driver.Phone, &b.Driver.IDCard,
		&b.Trip.Type,
		&b.Trip.City,
		&b.Trip.StartDate,
		&b.Trip.EndDate,
		&b.Trip.ActualEndDate,
		&b.Trip.StartTime,
		&b.Trip.EndTime,
		&b.Billing.TotalAmount,
		&b.Billing.AdvancePaid,
		&b.Billing.DiscountPercentage,
		&b.Billing.DiscountReference,
		&finalMeter,
		&b.CancellationReason,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.UpdatedAt,
		&b.LastModifiedBy,
	)
	if err != nil {
		return models.Booking{}, err
	}
	if stakeholderID.Valid {
		v := stakeholderID.Int64
		b.Car.StakeholderID = &v
	}
	if finalMeter.Valid {
		v := finalMeter.Int64
		b.FinalMeterReading = &v
	}
	b.Billing.Remaining = domain.ComputeRemaining(
		b.Billing.TotalAmount, b.Billing.AdvancePaid, b.Billing.DiscountPercentage)
	return b, nil
}

// List returns bookings, optionally filtered by status, newest first.
func (r BookingRepository) List(status string) ([]models.Booking, error) {
	query := bookingSelect
	args := []any{}
	if status != "" {
		query += " WHERE b.status = ?"
		args = append(args, status)
	}
	query += " ORDER BY b.id DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// ListForCar returns all bookings for one car regardless of status.
func (r BookingRepository) ListForCar(carID int64) ([]models.Booking, error) {
	rows, err := r.DB.Query(bookingSelect+" WHERE b.car_id = ? ORDER BY b.id DESC", carID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// GetByID loads one booking with full customer/car/driver detail.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	b, err := scanBooking(r.DB.QueryRow(bookingSelect+" WHERE b.id = ?", id))
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// Create inserts a new active booking and fills the generated ID.
func (r BookingRepository) Create(b *models.Booking, createdBy string) error {
	res, err := r.DB.Exec(`
		INSERT INTO bookings
		  (customer_id, car_id, driver_id, trip_type, city, start_date, end_date,
		   start_time, total_amount, advance_paid, discount_percentage, discount_reference,
		   status, created_at, created_by, updated_at, last_modified_by)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,NOW(),?,NOW(),?)
	`,
		b.Customer.ID, b.Car.ID, b.Driver.ID,
		b.Trip.Type, utils.NullIfEmpty(b.Trip.City), b.Trip.StartDate, b.Trip.EndDate,
		b.Trip.StartTime,
		b.Billing.TotalAmount, b.Billing.AdvancePaid, b.Billing.DiscountPercentage,
		utils.NullIfEmpty(b.Billing.DiscountReference),
		domain.StatusActive, createdBy, createdBy,
	)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	b.ID = id
	return nil
}

// UpdateActive persists an edited booking. The status guard in the WHERE
// clause keeps a concurrent end/cancel from being overwritten; zero rows
// means the booking left the active state (or never existed).
func (r BookingRepository) UpdateActive(b models.Booking, modifiedBy string) (int64, error) {
	res, err := r.DB.Exec(`
		UPDATE bookings
		SET trip_type=?, city=?, start_date=?, end_date=?, start_time=?,
		    total_amount=?, advance_paid=?, discount_percentage=?, discount_reference=?,
		    updated_at=NOW(), last_modified_by=?
		WHERE id=? AND status=?
	`,
		b.Trip.Type, utils.NullIfEmpty(b.Trip.City), b.Trip.StartDate, b.Trip.EndDate, b.Trip.StartTime,
		b.Billing.TotalAmount, b.Billing.AdvancePaid, b.Billing.DiscountPercentage,
		utils.NullIfEmpty(b.Billing.DiscountReference),
		modifiedBy, b.ID, domain.StatusActive,
	)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}

// MarkCompleted finalizes an active booking.
func (r BookingRepository) MarkCompleted(b models.Booking, modifiedBy string) (int64, error) {
	res, err := r.DB.Exec(`
		UPDATE bookings
		SET status=?, actual_end_date=?, end_time=?, final_meter_reading=?,
		    updated_at=NOW(), last_modified_by=?
		WHERE id=? AND status=?
	`,
		domain.StatusCompleted, b.Trip.ActualEndDate, utils.NullIfEmpty(b.Trip.EndTime),
		b.FinalMeterReading, modifiedBy, b.ID, domain.StatusActive,
	)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}

// MarkCancelled cancels an active booking.
func (r BookingRepository) MarkCancelled(b models.Booking, modifiedBy string) (int64, error) {
	res, err := r.DB.Exec(`
		UPDATE bookings
		SET status=?, cancellation_reason=?, updated_at=NOW(), last_modified_by=?
		WHERE id=? AND status=?
	`,
		domain.StatusCancelled, b.CancellationReason, modifiedBy, b.ID, domain.StatusActive,
	)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}
