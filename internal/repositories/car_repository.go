package repositories

import (
	"database/sql"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
)

// CarRepository covers the car lookups the booking lifecycle and reports
// need. Plain CRUD over cars lives in the cars handler.
type CarRepository struct {
	DB *sql.DB
}

const carSelect = `
	SELECT
		id,
		COALESCE(model,''),
		COALESCE(year,0),
		COALESCE(color,''),
		COALESCE(registration_number,''),
		COALESCE(chassis_number,''),
		COALESCE(engine_number,''),
		COALESCE(meter_reading,0),
		stakeholder_id
	FROM cars
`

func scanCar(row interface{ Scan(...any) error }) (models.Car, error) {
	var c models.Car
	var stakeholderID sql.NullInt64
	err := row.Scan(
		&c.ID, &c.Model, &c.Year, &c.Color,
		&c.RegistrationNumber, &c.ChassisNumber, &c.EngineNumber,
		&c.MeterReading, &stakeholderID,
	)
	if err != nil {
		return models.Car{}, err
	}
	if stakeholderID.Valid {
		v := stakeholderID.Int64
		c.StakeholderID = &v
	}
	return c, nil
}

func (r CarRepository) GetByID(id int64) (models.Car, error) {
	if id <= 0 {
		return models.Car{}, domain.NotFoundError{Resource: "car"}
	}
	c, err := scanCar(r.DB.QueryRow(carSelect+" WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return models.Car{}, domain.NotFoundError{Resource: "car", Err: err}
	}
	if err != nil {
		return models.Car{}, domain.InternalError{Err: err}
	}
	return c, nil
}

// ListByStakeholder returns all cars owned by the stakeholder.
func (r CarRepository) ListByStakeholder(stakeholderID int64) ([]models.Car, error) {
	rows, err := r.DB.Query(carSelect+" WHERE stakeholder_id = ? ORDER BY id", stakeholderID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Car{}
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// UpdateMeterReading writes the odometer after a booking ends. Readings only
// move forward; a lower value is ignored rather than rolled back.
func (r CarRepository) UpdateMeterReading(carID, reading int64) error {
	_, err := r.DB.Exec(`
		UPDATE cars SET meter_reading = ? WHERE id = ? AND meter_reading < ?
	`, reading, carID, reading)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// SetMeterReading overwrites the odometer from a booking edit. Unlike
// UpdateMeterReading it may move the value down, since an edit can correct a
// mistyped reading.
func (r CarRepository) SetMeterReading(carID, reading int64) error {
	_, err := r.DB.Exec(`
		UPDATE cars SET meter_reading = ? WHERE id = ?
	`, reading, carID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
