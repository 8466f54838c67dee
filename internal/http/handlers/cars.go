package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	intconfig "carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
	"carrental-backend/internal/services"
)

const carColumns = `
	id,
	COALESCE(model,''),
	COALESCE(year,0),
	COALESCE(color,''),
	COALESCE(registration_number,''),
	COALESCE(chassis_number,''),
	COALESCE(engine_number,''),
	COALESCE(meter_reading,0),
	stakeholder_id
`

func scanCarRow(row interface{ Scan(...any) error }, c *models.Car) error {
	var stakeholderID *int64
	err := row.Scan(
		&c.ID, &c.Model, &c.Year, &c.Color,
		&c.RegistrationNumber, &c.ChassisNumber, &c.EngineNumber,
		&c.MeterReading, &stakeholderID,
	)
	c.StakeholderID = stakeholderID
	return err
}

// GET /api/cars
func GetCars(c *gin.Context) {
	rows, err := intconfig.DB.Query(`SELECT ` + carColumns + ` FROM cars ORDER BY id DESC`)
	if err != nil {
		logrus.WithError(err).Error("GetCars query")
		RespondError(c, http.StatusInternalServerError, "failed to load cars", err)
		return
	}
	defer rows.Close()

	cars := []models.Car{}
	for rows.Next() {
		var car models.Car
		if err := scanCarRow(rows, &car); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to read cars", err)
			return
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to read cars", err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// POST /api/cars
func CreateCar(c *gin.Context) {
	var input models.Car
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := domain.ValidateCar(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO cars (model, year, color, registration_number, chassis_number,
		                  engine_number, meter_reading, stakeholder_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, input.Model, input.Year, input.Color, input.RegistrationNumber,
		input.ChassisNumber, input.EngineNumber, input.MeterReading, input.StakeholderID)
	if err != nil {
		logrus.WithError(err).Error("CreateCar insert")
		RespondError(c, http.StatusInternalServerError, "failed to create car", err)
		return
	}

	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/cars/:id
func UpdateCar(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var input models.Car
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := domain.ValidateCar(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE cars
		SET model=?, year=?, color=?, registration_number=?, chassis_number=?,
		    engine_number=?, meter_reading=?, stakeholder_id=?
		WHERE id=?
	`, input.Model, input.Year, input.Color, input.RegistrationNumber,
		input.ChassisNumber, input.EngineNumber, input.MeterReading, input.StakeholderID, id)
	if err != nil {
		logrus.WithError(err).Error("UpdateCar update")
		RespondError(c, http.StatusInternalServerError, "failed to update car", err)
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		var exists int
		if err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM cars WHERE id=?`, id).Scan(&exists); err == nil && exists == 0 {
			RespondError(c, http.StatusNotFound, "car not found", nil)
			return
		}
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/cars/:id
func DeleteCar(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	var active int
	if err := intconfig.DB.QueryRow(`
		SELECT COUNT(*) FROM bookings WHERE car_id=? AND status=?
	`, id, domain.StatusActive).Scan(&active); err == nil && active > 0 {
		RespondError(c, http.StatusConflict, "car is on an active booking", nil)
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM cars WHERE id=?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete car", err)
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		RespondError(c, http.StatusNotFound, "car not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "car deleted"})
}

// GET /api/cars/report/:id?startDate=&endDate=
func GetCarReport(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	svc := services.ReportsService{}
	report, err := svc.Car(id, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
