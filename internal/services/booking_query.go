package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"carrental-backend/internal/domain/models"
	"carrental-backend/internal/utils"
)

// Sort fields accepted by QueryBookings.
const (
	SortByStartDate    = "startDate"
	SortByEndDate      = "endDate"
	SortByTotalBill    = "totalBill"
	SortByCustomerName = "customerName"
	SortByCarModel     = "carModel"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// BookingQuery mirrors the list-screen controls: free-text search, a date
// range over the trip start date, and a single sort key.
type BookingQuery struct {
	Search    string
	StartDate string
	EndDate   string
	SortField string
	SortDir   string
}

// QueryBookings filters and sorts a booking collection. The input slice is
// never modified; ties keep their relative input order.
func QueryBookings(bookings []models.Booking, q BookingQuery) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	rawSearch := strings.TrimSpace(q.Search)

	var rangeStart, rangeEnd string
	if s := strings.TrimSpace(q.StartDate); s != "" {
		if t, err := utils.ParseDate(s); err == nil {
			rangeStart = utils.FormatDate(t)
		}
	}
	if s := strings.TrimSpace(q.EndDate); s != "" {
		if t, err := utils.ParseDate(s); err == nil {
			rangeEnd = utils.FormatDate(t)
		}
	}

	for _, b := range bookings {
		if search != "" && !matchesSearch(b, search, rawSearch) {
			continue
		}
		// Inclusive on both ends; normalized YYYY-MM-DD strings compare
		// the same as the timestamps they encode.
		if rangeStart != "" && b.Trip.StartDate < rangeStart {
			continue
		}
		if rangeEnd != "" && b.Trip.StartDate > rangeEnd {
			continue
		}
		out = append(out, b)
	}

	sortBookings(out, q.SortField, q.SortDir)
	return out
}

// matchesSearch folds case for names and models; the ID card is matched
// literally since it is a digits-and-dashes string.
func matchesSearch(b models.Booking, folded, raw string) bool {
	if strings.Contains(strings.ToLower(b.Customer.Name), folded) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Driver.Name), folded) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Car.Model), folded) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Car.RegistrationNumber), folded) {
		return true
	}
	return raw != "" && strings.Contains(b.Customer.IDCard, raw)
}

func sortBookings(list []models.Booking, field, dir string) {
	if field == "" {
		return
	}

	desc := strings.EqualFold(dir, SortDesc)
	coll := collate.New(language.English, collate.IgnoreCase)

	cmp := func(a, b models.Booking) int {
		switch field {
		case SortByStartDate:
			return compareDates(a.Trip.StartDate, b.Trip.StartDate)
		case SortByEndDate:
			return compareDates(a.Trip.EndDate, b.Trip.EndDate)
		case SortByTotalBill:
			switch {
			case a.Billing.TotalAmount < b.Billing.TotalAmount:
				return -1
			case a.Billing.TotalAmount > b.Billing.TotalAmount:
				return 1
			}
			return 0
		case SortByCustomerName:
			return coll.CompareString(a.Customer.Name, b.Customer.Name)
		case SortByCarModel:
			return coll.CompareString(a.Car.Model, b.Car.Model)
		}
		return 0
	}

	sort.SliceStable(list, func(i, j int) bool {
		c := cmp(list[i], list[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareDates(a, b string) int {
	ta, errA := utils.ParseDate(a)
	tb, errB := utils.ParseDate(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	switch {
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	}
	return 0
}
