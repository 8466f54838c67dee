package jobs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	intconfig "carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/repositories"
	"carrental-backend/internal/utils"
)

var overdueGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "carrental_overdue_bookings",
	Help: "Active bookings whose planned end date has passed.",
})

// StartOverdueSweep schedules the nightly overdue count. The sweep is
// informational: it logs and updates the gauge but never mutates booking
// status; ending a booking stays a staff decision.
func StartOverdueSweep(env intconfig.Env) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(env.OverdueCron, func() { SweepOverdue() })
	if err != nil {
		return nil, err
	}
	c.Start()
	logrus.WithField("schedule", env.OverdueCron).Info("overdue sweep scheduled")
	return c, nil
}

// SweepOverdue counts active bookings past their planned end date.
func SweepOverdue() int {
	repo := repositories.BookingRepository{DB: intconfig.DB}
	list, err := repo.List(domain.StatusActive)
	if err != nil {
		logrus.WithError(err).Error("overdue sweep failed")
		return 0
	}

	today := utils.FormatDate(time.Now())
	overdue := 0
	for _, b := range list {
		if b.Trip.EndDate != "" && b.Trip.EndDate < today {
			overdue++
			logrus.WithFields(logrus.Fields{
				"booking_id": b.ID,
				"end_date":   b.Trip.EndDate,
				"customer":   b.Customer.Name,
			}).Warn("booking overdue")
		}
	}

	overdueGauge.Set(float64(overdue))
	logrus.WithField("overdue", overdue).Info("overdue sweep complete")
	return overdue
}
