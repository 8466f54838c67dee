package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carrental-backend/internal/domain/models"
	"carrental-backend/internal/http/middleware"
	"carrental-backend/internal/services"
	"carrental-backend/internal/utils"
)

// GET /api/bookings?status=&q=&startDate=&endDate=&sortField=&sortDir=
func GetBookings(c *gin.Context) {
	svc := services.BookingService{}
	list, err := svc.ListBookings(c.Query("status"), services.BookingQuery{
		Search:    c.Query("q"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		SortField: c.Query("sortField"),
		SortDir:   c.Query("sortDir"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/:id/details
func GetBookingDetails(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	svc := services.BookingService{}
	b, err := svc.GetBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type createBookingRequest struct {
	CustomerID int64          `json:"customerId"`
	CarID      int64          `json:"carId"`
	DriverID   int64          `json:"driverId"`
	Trip       models.Trip    `json:"trip"`
	Billing    models.Billing `json:"billing"`
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{}
	b, err := svc.CreateBooking(models.Booking{
		Customer: models.Customer{ID: req.CustomerID},
		Car:      models.Car{ID: req.CarID},
		Driver:   models.Driver{ID: req.DriverID},
		Trip:     req.Trip,
		Billing:  req.Billing,
	}, middleware.Username(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "bookings", "create",
		"booking "+strconv.FormatInt(b.ID, 10)+" created, remaining "+utils.FormatMoney(b.Billing.Remaining))
	c.JSON(http.StatusCreated, b)
}

// PATCH /api/bookings/:id
func EditBooking(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var patch models.BookingPatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	svc := services.BookingService{}
	b, err := svc.EditBooking(id, patch, middleware.Username(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PATCH /api/bookings/:id/end
func EndBooking(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var req models.EndRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{}
	b, err := svc.EndBooking(id, req, middleware.Username(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "bookings", "end",
		"booking "+strconv.FormatInt(b.ID, 10)+" completed, remaining "+utils.FormatMoney(b.Billing.Remaining))
	c.JSON(http.StatusOK, b)
}

// PATCH /api/bookings/:id/cancel
func CancelBooking(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var req models.CancelRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{}
	b, err := svc.CancelBooking(id, req, middleware.Username(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "bookings", "cancel",
		"booking "+strconv.FormatInt(b.ID, 10)+" cancelled")
	c.JSON(http.StatusOK, b)
}
