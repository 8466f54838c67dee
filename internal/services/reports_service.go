package services

import (
	"database/sql"
	"time"

	intconfig "carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
	"carrental-backend/internal/repositories"
	"carrental-backend/internal/utils"
)

// ReportsService feeds the pure aggregators with repository data.
type ReportsService struct {
	BookingRepo     repositories.BookingRepository
	ExpenseRepo     repositories.ExpenseRepository
	CarRepo         repositories.CarRepository
	StakeholderRepo repositories.StakeholderRepository
	DB              *sql.DB
}

func (s ReportsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ReportsService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s ReportsService) expenses() repositories.ExpenseRepository {
	if s.ExpenseRepo.DB != nil {
		return s.ExpenseRepo
	}
	return repositories.ExpenseRepository{DB: s.db()}
}

func (s ReportsService) cars() repositories.CarRepository {
	if s.CarRepo.DB != nil {
		return s.CarRepo
	}
	return repositories.CarRepository{DB: s.db()}
}

func (s ReportsService) stakeholders() repositories.StakeholderRepository {
	if s.StakeholderRepo.DB != nil {
		return s.StakeholderRepo
	}
	return repositories.StakeholderRepository{DB: s.db()}
}

// Monthly builds the month rollup. The previous month is loaded as part of
// the same pass so percent-change fields can be filled.
func (s ReportsService) Monthly(month, year int) (models.MonthlyStats, error) {
	if month < 1 || month > 12 {
		return models.MonthlyStats{}, domain.ValidationError{Field: "month", Msg: "must be 1..12"}
	}
	if year < 2000 || year > 2100 {
		return models.MonthlyStats{}, domain.ValidationError{Field: "year", Msg: "out of range"}
	}

	bookings, err := s.bookings().List("")
	if err != nil {
		return models.MonthlyStats{}, err
	}
	expenses, err := s.expenses().List(repositories.ExpenseFilter{})
	if err != nil {
		return models.MonthlyStats{}, err
	}
	return AggregateMonthly(bookings, expenses, month, year), nil
}

// Car builds the per-car report. An empty range defaults to the current
// month.
func (s ReportsService) Car(carID int64, startDate, endDate string) (models.CarReport, error) {
	if _, err := s.cars().GetByID(carID); err != nil {
		return models.CarReport{}, err
	}

	windowStart, windowEnd, err := reportWindow(startDate, endDate)
	if err != nil {
		return models.CarReport{}, err
	}

	bookings, err := s.bookings().ListForCar(carID)
	if err != nil {
		return models.CarReport{}, err
	}
	expenses, err := s.expenses().List(repositories.ExpenseFilter{CarID: &carID})
	if err != nil {
		return models.CarReport{}, err
	}
	return AggregateCar(carID, bookings, expenses, windowStart, windowEnd), nil
}

// Stakeholder builds the owner rollup across all of their cars.
func (s ReportsService) Stakeholder(id int64, startDate, endDate string) (models.StakeholderReport, error) {
	owner, err := s.stakeholders().GetByID(id)
	if err != nil {
		return models.StakeholderReport{}, err
	}

	windowStart, windowEnd, err := reportWindow(startDate, endDate)
	if err != nil {
		return models.StakeholderReport{}, err
	}

	cars, err := s.cars().ListByStakeholder(id)
	if err != nil {
		return models.StakeholderReport{}, err
	}

	bookings := []models.Booking{}
	for _, c := range cars {
		carBookings, err := s.bookings().ListForCar(c.ID)
		if err != nil {
			return models.StakeholderReport{}, err
		}
		bookings = append(bookings, carBookings...)
	}

	expenses, err := s.expenses().List(repositories.ExpenseFilter{Category: domain.ExpenseCategoryCar})
	if err != nil {
		return models.StakeholderReport{}, err
	}
	return AggregateStakeholder(owner, cars, bookings, expenses, windowStart, windowEnd), nil
}

func reportWindow(startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" && endDate == "" {
		now := time.Now()
		first, last := utils.MonthBounds(int(now.Month()), now.Year())
		return first, last, nil
	}
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "startDate", Msg: "format must be YYYY-MM-DD"}
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "endDate", Msg: "format must be YYYY-MM-DD"}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "endDate", Msg: "must not precede startDate"}
	}
	return start, end, nil
}
