package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_registrations_started_total",
		Help: "Total number of registration starts (OTP issued).",
	})
	RegistrationsConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_registrations_confirmed_total",
		Help: "Total number of confirmed registrations.",
	})
	OTPVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_otp_verifications_total",
		Help: "Total number of OTP verification attempts.",
	}, []string{"result"}) // result: "confirmed", "expired" or "invalid"
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_login_attempts_total",
		Help: "Total number of login attempts (successful and failed).",
	}, []string{"status"}) // status: "success" or "failed"
	CardsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_cards_generated_total",
		Help: "Total number of masked ID cards rendered and dispatched.",
	})
	OTPsSweptTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_otps_swept_total",
		Help: "Total number of expired OTP rows removed by the sweeper.",
	})
)
