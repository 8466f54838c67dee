package services

import (
	"database/sql"

	intconfig "carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/domain/models"
	"carrental-backend/internal/repositories"
)

// BookingService owns the booking lifecycle. Transition rules live in the
// domain package; this layer loads state, applies them and persists with an
// optimistic status guard so concurrent end/cancel requests cannot both win.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	CarRepo     repositories.CarRepository
	DB          *sql.DB
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) cars() repositories.CarRepository {
	if s.CarRepo.DB != nil {
		return s.CarRepo
	}
	return repositories.CarRepository{DB: s.db()}
}

// ListBookings fetches bookings by optional status and applies the
// list-screen query (search, date range, sort) in memory.
func (s BookingService) ListBookings(status string, q BookingQuery) ([]models.Booking, error) {
	if status != "" && !domain.IsValidStatus(status) {
		return nil, domain.ValidationError{Field: "status", Msg: "must be active, completed or cancelled"}
	}
	list, err := s.bookings().List(status)
	if err != nil {
		return nil, err
	}
	return QueryBookings(list, q), nil
}

func (s BookingService) GetBooking(id int64) (models.Booking, error) {
	return s.bookings().GetByID(id)
}

// CreateBooking persists a new active booking. The car must exist and must
// not already be on an active booking.
func (s BookingService) CreateBooking(b models.Booking, actor string) (models.Booking, error) {
	b.Status = domain.StatusActive
	if err := domain.ValidateNewBooking(b); err != nil {
		return models.Booking{}, err
	}

	car, err := s.cars().GetByID(b.Car.ID)
	if err != nil {
		return models.Booking{}, err
	}

	existing, err := s.bookings().ListForCar(car.ID)
	if err != nil {
		return models.Booking{}, err
	}
	for _, other := range existing {
		if other.Status == domain.StatusActive {
			return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "car is already on an active booking"}
		}
	}

	b.Billing.Remaining = domain.ComputeRemaining(
		b.Billing.TotalAmount, b.Billing.AdvancePaid, b.Billing.DiscountPercentage)
	if err := s.bookings().Create(&b, actor); err != nil {
		return models.Booking{}, err
	}
	return s.bookings().GetByID(b.ID)
}

// EditBooking patches trip/billing fields of an active booking.
func (s BookingService) EditBooking(id int64, patch models.BookingPatch, actor string) (models.Booking, error) {
	b, err := s.bookings().GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := domain.ApplyBookingPatch(&b, patch); err != nil {
		return models.Booking{}, err
	}

	affected, err := s.bookings().UpdateActive(b, actor)
	if err != nil {
		return models.Booking{}, err
	}
	if affected == 0 {
		return models.Booking{}, s.staleTransition(id, "edit")
	}

	// The meter reading lives on the car, not the booking row.
	if patch.MeterReading != nil {
		if err := s.cars().SetMeterReading(b.Car.ID, *patch.MeterReading); err != nil {
			return models.Booking{}, err
		}
	}
	return s.bookings().GetByID(id)
}

// EndBooking completes an active booking and pushes the final meter reading
// to the car.
func (s BookingService) EndBooking(id int64, req models.EndRequest, actor string) (models.Booking, error) {
	b, err := s.bookings().GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := domain.EndBooking(&b, req); err != nil {
		return models.Booking{}, err
	}

	affected, err := s.bookings().MarkCompleted(b, actor)
	if err != nil {
		return models.Booking{}, err
	}
	if affected == 0 {
		return models.Booking{}, s.staleTransition(id, "end")
	}

	if b.FinalMeterReading != nil {
		if err := s.cars().UpdateMeterReading(b.Car.ID, *b.FinalMeterReading); err != nil {
			return models.Booking{}, err
		}
	}
	return s.bookings().GetByID(id)
}

// CancelBooking cancels an active booking with a mandatory reason.
func (s BookingService) CancelBooking(id int64, req models.CancelRequest, actor string) (models.Booking, error) {
	b, err := s.bookings().GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := domain.CancelBooking(&b, req); err != nil {
		return models.Booking{}, err
	}

	affected, err := s.bookings().MarkCancelled(b, actor)
	if err != nil {
		return models.Booking{}, err
	}
	if affected == 0 {
		return models.Booking{}, s.staleTransition(id, "cancel")
	}
	return s.bookings().GetByID(id)
}

// staleTransition classifies a guarded UPDATE that hit zero rows: either the
// booking vanished or another request moved it out of active first.
func (s BookingService) staleTransition(id int64, action string) error {
	current, err := s.bookings().GetByID(id)
	if err != nil {
		return err
	}
	if domain.IsTerminalStatus(current.Status) {
		return domain.InvalidStateError{Current: current.Status, Action: action}
	}
	return domain.ConflictError{Resource: "booking", Msg: "modified concurrently, retry"}
}
