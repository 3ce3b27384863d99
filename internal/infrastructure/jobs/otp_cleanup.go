package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"masked-aadhaar.backend/internal/domain/repositories"
	"masked-aadhaar.backend/internal/metrics"
	"masked-aadhaar.backend/pkg/logger"
)

// DefaultCleanupInterval matches the original once-a-minute sweep.
const DefaultCleanupInterval = time.Minute

// OTPCleanupJob periodically deletes expired pending one-time codes. The
// per-request expiry checks stay correct without it; the sweep just keeps the
// table from accumulating dead rows.
type OTPCleanupJob struct {
	repo     repositories.OTPRepository
	interval time.Duration
	stop     chan struct{}
}

// NewOTPCleanupJob creates the sweep job with the given interval
// (DefaultCleanupInterval when zero).
func NewOTPCleanupJob(repo repositories.OTPRepository, interval time.Duration) *OTPCleanupJob {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &OTPCleanupJob{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start runs the sweep loop until the context is cancelled or Stop is called
func (j *OTPCleanupJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting OTP cleanup job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "OTP cleanup job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "OTP cleanup job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

// Stop terminates the sweep loop
func (j *OTPCleanupJob) Stop() {
	close(j.stop)
}

func (j *OTPCleanupJob) sweep(ctx context.Context) {
	swept, err := j.repo.DeleteExpired(ctx, time.Now().Unix())
	if err != nil {
		logger.Error(ctx, "Failed to sweep expired OTPs", zap.Error(err))
		return
	}
	if swept > 0 {
		metrics.OTPsSweptTotal.Add(float64(swept))
		logger.Info(ctx, "Swept expired OTPs", zap.Int64("count", swept))
	}
}
