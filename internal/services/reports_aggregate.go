package services

import (
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
	"carrental-backend/internal/utils"
)

// Pure reducers behind the report screens. No I/O here; callers supply the
// collections. Every ratio guards its denominator so an empty month or an
// unused car reports zeros instead of NaN.

// AggregateMonthly rolls bookings and expenses into one month's stats.
// Percent-change fields compare against the immediately preceding month and
// stay nil when the prior value is zero.
func AggregateMonthly(bookings []models.Booking, expenses []models.Expense, month, year int) models.MonthlyStats {
	stats := models.MonthlyStats{Month: month, Year: year}

	revenue, expSum := monthTotals(bookings, expenses, month, year, &stats)
	stats.TotalRevenue = revenue
	stats.TotalExpenses = expSum
	stats.NetProfit = revenue - expSum

	prevMonth, prevYear := month-1, year
	if prevMonth == 0 {
		prevMonth, prevYear = 12, year-1
	}
	prevRevenue, prevExpenses := monthTotals(bookings, expenses, prevMonth, prevYear, nil)
	stats.RevenueChangePct = percentChange(revenue, prevRevenue)
	stats.ExpensesChangePct = percentChange(expSum, prevExpenses)
	stats.ProfitChangePct = percentChange(revenue-expSum, prevRevenue-prevExpenses)

	return stats
}

// monthTotals sums revenue and expenses for one month; when stats is non-nil
// it also fills the status counters.
func monthTotals(bookings []models.Booking, expenses []models.Expense, month, year int, stats *models.MonthlyStats) (float64, float64) {
	first, last := utils.MonthBounds(month, year)

	var revenue float64
	for _, b := range bookings {
		start, err := utils.ParseDate(b.Trip.StartDate)
		if err != nil || start.Before(first) || start.After(last) {
			continue
		}
		if stats != nil {
			stats.TotalBookings++
			switch b.Status {
			case domain.StatusActive:
				stats.ActiveBookings++
			case domain.StatusCompleted:
				stats.CompletedBookings++
			case domain.StatusCancelled:
				stats.CancelledBookings++
			}
		}
		if b.Status == domain.StatusActive || b.Status == domain.StatusCompleted {
			revenue += b.Billing.TotalAmount
		}
	}

	var expSum float64
	for _, e := range expenses {
		d, err := utils.ParseDate(e.Date)
		if err != nil || d.Before(first) || d.After(last) {
			continue
		}
		expSum += e.Amount
	}
	return revenue, expSum
}

func percentChange(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	pct := (current - previous) / previous * 100
	return &pct
}

// AggregateCar builds the per-car rollup over the report window. Cancelled
// bookings never count towards revenue, utilization or duration.
func AggregateCar(carID int64, bookings []models.Booking, expenses []models.Expense, windowStart, windowEnd time.Time) models.CarReport {
	report := models.CarReport{CarID: carID}

	windowDays := utils.DaysInclusive(windowStart, windowEnd)
	var bookedDays, durationSum, durationCount int

	for _, b := range bookings {
		if b.Car.ID != carID || b.Status == domain.StatusCancelled {
			continue
		}
		report.TotalBookings++
		report.TotalRevenue += b.Billing.TotalAmount

		start, errS := utils.ParseDate(b.Trip.StartDate)
		end, errE := utils.ParseDate(effectiveEndDate(b))
		if errS != nil || errE != nil {
			continue
		}
		bookedDays += utils.OverlapDays(start, end, windowStart, windowEnd)
		durationSum += utils.DaysBetween(start, end)
		durationCount++
	}

	for _, e := range expenses {
		if e.CarID == nil || *e.CarID != carID {
			continue
		}
		d, err := utils.ParseDate(e.Date)
		if err != nil || d.Before(windowStart) || d.After(windowEnd) {
			continue
		}
		report.TotalExpenses += e.Amount
	}

	report.NetProfit = report.TotalRevenue - report.TotalExpenses
	if windowDays > 0 {
		rate := float64(bookedDays) / float64(windowDays) * 100
		if rate > 100 {
			rate = 100
		}
		if rate < 0 {
			rate = 0
		}
		report.UtilizationRate = rate
	}
	if durationCount > 0 {
		report.AverageBookingDuration = float64(durationSum) / float64(durationCount)
	}
	return report
}

func effectiveEndDate(b models.Booking) string {
	if b.Trip.ActualEndDate != "" {
		return b.Trip.ActualEndDate
	}
	return b.Trip.EndDate
}

// AggregateStakeholder rolls up every car owned by the stakeholder.
// commission = revenue * commissionPercentage / 100,
// profit = revenue - expenses - commission.
func AggregateStakeholder(s models.Stakeholder, cars []models.Car, bookings []models.Booking, expenses []models.Expense, windowStart, windowEnd time.Time) models.StakeholderReport {
	report := models.StakeholderReport{
		StakeholderID:        s.ID,
		Name:                 s.Name,
		CommissionPercentage: s.CommissionPercentage,
	}

	for _, c := range cars {
		if c.StakeholderID == nil || *c.StakeholderID != s.ID {
			continue
		}
		carReport := AggregateCar(c.ID, bookings, expenses, windowStart, windowEnd)
		report.Cars = append(report.Cars, carReport)
		report.TotalRevenue += carReport.TotalRevenue
		report.TotalExpenses += carReport.TotalExpenses
	}

	report.CommissionAmount = report.TotalRevenue * s.CommissionPercentage / 100
	report.TotalProfit = report.TotalRevenue - report.TotalExpenses - report.CommissionAmount
	return report
}
