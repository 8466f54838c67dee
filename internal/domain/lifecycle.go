package domain

import (
	"strings"

	"carrental-backend/internal/domain/models"
	"carrental-backend/internal/utils"
)

// Lifecycle rules for bookings: active is the only mutable status, and the
// only transitions are active->completed (End) and active->cancelled
// (Cancel). All three functions validate before touching the booking, so a
// failed call leaves it byte-for-byte unchanged.

// EndBooking completes an active booking. The actual end date (or end time)
// and the final meter reading are both mandatory.
func EndBooking(b *models.Booking, req models.EndRequest) error {
	if b.Status != StatusActive {
		return InvalidStateError{Current: b.Status, Action: "end"}
	}
	endDate := strings.TrimSpace(req.ActualEndDate)
	endTime := strings.TrimSpace(req.EndTime)
	if endDate == "" && endTime == "" {
		return ValidationError{Field: "actualEndDate", Msg: "end date or end time is required"}
	}
	if req.FinalMeterReading == nil {
		return ValidationError{Field: "finalMeterReading", Msg: "required"}
	}
	if *req.FinalMeterReading < 0 {
		return ValidationError{Field: "finalMeterReading", Msg: "must not be negative"}
	}

	b.Status = StatusCompleted
	if endDate != "" {
		b.Trip.ActualEndDate = endDate
	} else {
		b.Trip.ActualEndDate = b.Trip.EndDate
	}
	b.Trip.EndTime = endTime
	b.FinalMeterReading = req.FinalMeterReading
	return nil
}

// CancelBooking cancels an active booking. A blank reason is rejected.
func CancelBooking(b *models.Booking, req models.CancelRequest) error {
	if b.Status != StatusActive {
		return InvalidStateError{Current: b.Status, Action: "cancel"}
	}
	reason := utils.NormalizeSpace(req.CancellationReason)
	if reason == "" {
		return ValidationError{Field: "cancellationReason", Msg: "required"}
	}

	b.Status = StatusCancelled
	b.CancellationReason = reason
	return nil
}

// ApplyBookingPatch edits trip and billing fields of an active booking and
// recomputes the remaining balance. Patch semantics follow key presence: nil
// pointers leave the field alone.
func ApplyBookingPatch(b *models.Booking, patch models.BookingPatch) error {
	if b.Status != StatusActive {
		return InvalidStateError{Current: b.Status, Action: "edit"}
	}

	trip := b.Trip
	billing := b.Billing
	meter := b.Car.MeterReading

	if patch.TripType != nil {
		t := strings.TrimSpace(*patch.TripType)
		if !IsValidTripType(t) {
			return ValidationError{Field: "tripType", Msg: "must be within-city or out-of-city"}
		}
		trip.Type = t
	}
	if patch.City != nil {
		trip.City = strings.TrimSpace(*patch.City)
	}
	if trip.Type == TripOutOfCity && trip.City == "" {
		return ValidationError{Field: "city", Msg: "required for out-of-city trips"}
	}
	if trip.Type == TripWithinCity {
		trip.City = ""
	}
	if patch.StartDate != nil {
		trip.StartDate = strings.TrimSpace(*patch.StartDate)
	}
	if patch.EndDate != nil {
		trip.EndDate = strings.TrimSpace(*patch.EndDate)
	}
	if patch.StartTime != nil {
		trip.StartTime = strings.TrimSpace(*patch.StartTime)
	}
	if patch.MeterReading != nil {
		if *patch.MeterReading < 0 {
			return ValidationError{Field: "meterReading", Msg: "must not be negative"}
		}
		meter = *patch.MeterReading
	}

	if patch.TotalAmount != nil {
		billing.TotalAmount = *patch.TotalAmount
	}
	if patch.AdvancePaid != nil {
		billing.AdvancePaid = *patch.AdvancePaid
	}
	if patch.DiscountPercentage != nil {
		billing.DiscountPercentage = *patch.DiscountPercentage
	}
	if patch.DiscountReference != nil {
		billing.DiscountReference = strings.TrimSpace(*patch.DiscountReference)
	}
	if err := ValidateBillingInput(billing.TotalAmount, billing.AdvancePaid, billing.DiscountPercentage); err != nil {
		return err
	}
	billing.Remaining = ComputeRemaining(billing.TotalAmount, billing.AdvancePaid, billing.DiscountPercentage)

	b.Trip = trip
	b.Billing = billing
	b.Car.MeterReading = meter
	return nil
}
