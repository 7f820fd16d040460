package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_logins_total",
		Help: "Total number of issued session tokens by role.",
	},
		[]string{"role"},
	)

	EquipmentBookingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_equipment_bookings_total",
		Help: "Equipment booking attempts by outcome (booked, conflict, not_found, error).",
	},
		[]string{"outcome"},
	)

	ComplaintsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campus_complaints_created_total",
		Help: "Total number of complaints submitted.",
	})

	ComplaintStatusUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_complaint_status_updates_total",
		Help: "Complaint status changes by target status.",
	},
		[]string{"status"},
	)

	MessFeedbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_mess_feedback_total",
		Help: "Mess feedback submissions by meal type.",
	},
		[]string{"meal_type"},
	)

	LostFoundItemsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_lost_found_items_total",
		Help: "Lost and found postings by type.",
	},
		[]string{"type"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campus_http_request_duration_seconds",
		Help:    "HTTP request latency by method, route pattern and status code.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route", "status"},
	)
)
