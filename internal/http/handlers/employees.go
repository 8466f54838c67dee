package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	intconfig "carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
	"carrental-backend/internal/utils"
)

const employeeColumns = `
	id,
	COALESCE(name,''),
	COALESCE(phone,''),
	COALESCE(id_card,''),
	COALESCE(designation,''),
	COALESCE(salary,0),
	COALESCE(DATE_FORMAT(joined_at, '%Y-%m-%d'),'')
`

// GET /api/employees
func GetEmployees(c *gin.Context) {
	rows, err := intconfig.DB.Query(`SELECT ` + employeeColumns + ` FROM employees ORDER BY id DESC`)
	if err != nil {
		logrus.WithError(err).Error("GetEmployees query")
		RespondError(c, http.StatusInternalServerError, "failed to load employees", err)
		return
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Phone, &e.IDCard, &e.Designation, &e.Salary, &e.JoinedAt); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to read employees", err)
			return
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to read employees", err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// POST /api/employees
func CreateEmployee(c *gin.Context) {
	var input models.Employee
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := domain.ValidateEmployee(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO employees (name, phone, id_card, designation, salary, joined_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, input.Name, input.Phone, input.IDCard,
		utils.NullIfEmpty(input.Designation), input.Salary, utils.NullIfEmpty(input.JoinedAt))
	if err != nil {
		logrus.WithError(err).Error("CreateEmployee insert")
		RespondError(c, http.StatusInternalServerError, "failed to create employee", err)
		return
	}

	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/employees/:id
func UpdateEmployee(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var input models.Employee
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := domain.ValidateEmployee(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE employees
		SET name=?, phone=?, id_card=?, designation=?, salary=?, joined_at=?
		WHERE id=?
	`, input.Name, input.Phone, input.IDCard,
		utils.NullIfEmpty(input.Designation), input.Salary, utils.NullIfEmpty(input.JoinedAt), id)
	if err != nil {
		logrus.WithError(err).Error("UpdateEmployee update")
		RespondError(c, http.StatusInternalServerError, "failed to update employee", err)
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		var exists int
		if err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM employees WHERE id=?`, id).Scan(&exists); err == nil && exists == 0 {
			RespondError(c, http.StatusNotFound, "employee not found", nil)
			return
		}
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/employees/:id
func DeleteEmployee(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM employees WHERE id=?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete employee", err)
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		RespondError(c, http.StatusNotFound, "employee not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "employee deleted"})
}
