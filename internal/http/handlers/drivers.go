package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	intconfig "carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
)

// GET /api/drivers
func GetDrivers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, COALESCE(name,''), COALESCE(phone,''), COALESCE(id_card,'')
		FROM drivers
		ORDER BY id DESC
	`)
	if err != nil {
		logrus.WithError(err).Error("GetDrivers query")
		RespondError(c, http.StatusInternalServerError, "failed to load drivers", err)
		return
	}
	defer rows.Close()

	drivers := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.IDCard); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to read drivers", err)
			return
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to read drivers", err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var input models.Driver
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := domain.ValidateDriver(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO drivers (name, phone, id_card) VALUES (?, ?, ?)
	`, input.Name, input.Phone, input.IDCard)
	if err != nil {
		logrus.WithError(err).Error("CreateDriver insert")
		RespondError(c, http.StatusInternalServerError, "failed to create driver", err)
		return
	}

	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var input models.Driver
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := domain.ValidateDriver(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE drivers SET name=?, phone=?, id_card=? WHERE id=?
	`, input.Name, input.Phone, input.IDCard, id)
	if err != nil {
		logrus.WithError(err).Error("UpdateDriver update")
		RespondError(c, http.StatusInternalServerError, "failed to update driver", err)
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		var exists int
		if err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM drivers WHERE id=?`, id).Scan(&exists); err == nil && exists == 0 {
			RespondError(c, http.StatusNotFound, "driver not found", nil)
			return
		}
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM drivers WHERE id=?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete driver", err)
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		RespondError(c, http.StatusNotFound, "driver not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver deleted"})
}
