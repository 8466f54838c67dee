package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	intconfig "carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
	"carrental-backend/internal/repositories"
)

func expenseRepo() repositories.ExpenseRepository {
	return repositories.ExpenseRepository{DB: intconfig.DB}
}

// GET /api/expenses?startDate=&endDate=&category=&carId=
func GetExpenses(c *gin.Context) {
	filter := repositories.ExpenseFilter{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Category:  c.Query("category"),
	}
	if raw := c.Query("carId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid carId", nil)
			return
		}
		filter.CarID = &id
	}

	list, err := expenseRepo().List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/expenses
func CreateExpense(c *gin.Context) {
	var input models.Expense
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := domain.ValidateExpense(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := expenseRepo().Create(&input); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, input)
}

// PUT /api/expenses/:id
func UpdateExpense(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var input models.Expense
	if !BindJSONOrError(c, &input) {
		return
	}
	input.ID = id
	if err := domain.ValidateExpense(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := expenseRepo().Update(input); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// DELETE /api/expenses/:id
func DeleteExpense(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	if err := expenseRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}
