package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_bookings_created_total",
		Help: "Bookings successfully created.",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_booking_conflicts_total",
		Help: "Booking attempts rejected by the overlap guard.",
	})

	InvoicesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_invoices_generated_total",
		Help: "Invoices issued.",
	})
)
