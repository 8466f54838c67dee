package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	intconfig "carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
)

// GET /api/customers
func GetCustomers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, COALESCE(name,''), COALESCE(phone,''), COALESCE(id_card,'')
		FROM customers
		ORDER BY id DESC
	`)
	if err != nil {
		logrus.WithError(err).Error("GetCustomers query")
		RespondError(c, http.StatusInternalServerError, "failed to load customers", err)
		return
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var cu models.Customer
		if err := rows.Scan(&cu.ID, &cu.Name, &cu.Phone, &cu.IDCard); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to read customers", err)
			return
		}
		customers = append(customers, cu)
	}
	if err := rows.Err(); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to read customers", err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// POST /api/customers
func CreateCustomer(c *gin.Context) {
	var input models.Customer
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := domain.ValidateCustomer(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO customers (name, phone, id_card) VALUES (?, ?, ?)
	`, input.Name, input.Phone, input.IDCard)
	if err != nil {
		logrus.WithError(err).Error("CreateCustomer insert")
		RespondError(c, http.StatusInternalServerError, "failed to create customer", err)
		return
	}

	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/customers/:id
func UpdateCustomer(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var input models.Customer
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := domain.ValidateCustomer(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE customers SET name=?, phone=?, id_card=? WHERE id=?
	`, input.Name, input.Phone, input.IDCard, id)
	if err != nil {
		logrus.WithError(err).Error("UpdateCustomer update")
		RespondError(c, http.StatusInternalServerError, "failed to update customer", err)
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		var exists int
		if err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM customers WHERE id=?`, id).Scan(&exists); err == nil && exists == 0 {
			RespondError(c, http.StatusNotFound, "customer not found", nil)
			return
		}
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/customers/:id
func DeleteCustomer(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM customers WHERE id=?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete customer", err)
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		RespondError(c, http.StatusNotFound, "customer not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}
