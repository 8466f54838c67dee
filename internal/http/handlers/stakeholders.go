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

// GET /api/stakeholders
func GetStakeholders(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, COALESCE(name,''), COALESCE(phone,''), COALESCE(commission_percentage,0)
		FROM stakeholders
		ORDER BY id DESC
	`)
	if err != nil {
		logrus.WithError(err).Error("GetStakeholders query")
		RespondError(c, http.StatusInternalServerError, "failed to load stakeholders", err)
		return
	}
	defer rows.Close()

	stakeholders := []models.Stakeholder{}
	for rows.Next() {
		var s models.Stakeholder
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.CommissionPercentage); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to read stakeholders", err)
			return
		}
		stakeholders = append(stakeholders, s)
	}
	if err := rows.Err(); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to read stakeholders", err)
		return
	}
	c.JSON(http.StatusOK, stakeholders)
}

// POST /api/stakeholders
func CreateStakeholder(c *gin.Context) {
	var input models.Stakeholder
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := domain.ValidateStakeholder(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO stakeholders (name, phone, commission_percentage) VALUES (?, ?, ?)
	`, input.Name, input.Phone, input.CommissionPercentage)
	if err != nil {
		logrus.WithError(err).Error("CreateStakeholder insert")
		RespondError(c, http.StatusInternalServerError, "failed to create stakeholder", err)
		return
	}

	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/stakeholders/:id
func UpdateStakeholder(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var input models.Stakeholder
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := domain.ValidateStakeholder(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE stakeholders SET name=?, phone=?, commission_percentage=? WHERE id=?
	`, input.Name, input.Phone, input.CommissionPercentage, id)
	if err != nil {
		logrus.WithError(err).Error("UpdateStakeholder update")
		RespondError(c, http.StatusInternalServerError, "failed to update stakeholder", err)
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		var exists int
		if err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM stakeholders WHERE id=?`, id).Scan(&exists); err == nil && exists == 0 {
			RespondError(c, http.StatusNotFound, "stakeholder not found", nil)
			return
		}
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/stakeholders/:id
func DeleteStakeholder(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	var owned int
	if err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM cars WHERE stakeholder_id=?`, id).Scan(&owned); err == nil && owned > 0 {
		RespondError(c, http.StatusConflict, "stakeholder still owns cars", nil)
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM stakeholders WHERE id=?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete stakeholder", err)
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		RespondError(c, http.StatusNotFound, "stakeholder not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stakeholder deleted"})
}

// GET /api/stakeholders/details/:id?startDate=&endDate=
func GetStakeholderDetails(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	svc := services.ReportsService{}
	report, err := svc.Stakeholder(id, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
