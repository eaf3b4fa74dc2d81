package workers

import (
	"context"
	"time"

	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/store"
)

// OTPCleanupWorker periodically removes stale signups: unverified accounts
// whose verification code can no longer be redeemed. Without it those rows
// would pile up and keep their email addresses reserved forever.
//
// A code stays redeemable for one validity window past its stored expiry
// (a late verify attempt re-issues instead of failing), so only rows whose
// expiry lies more than otpValidity in the past are purged.
type OTPCleanupWorker struct {
	userRepository store.UserRepository
	interval       time.Duration
	otpValidity    time.Duration
	logger         *logger.Logger
}

// NewOTPCleanupWorker constructs the worker. A non-positive interval
// disables it: Run returns immediately without ever purging.
func NewOTPCleanupWorker(userRepository store.UserRepository, interval, otpValidity time.Duration, logger *logger.Logger) *OTPCleanupWorker {
	return &OTPCleanupWorker{
		userRepository: userRepository,
		interval:       interval,
		otpValidity:    otpValidity,
		logger:         logger,
	}
}

// Run ticks at the configured interval until ctx is cancelled, purging
// no-longer-redeemable unverified accounts on every tick.
func (w *OTPCleanupWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("OTP cleanup worker disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

func (w *OTPCleanupWorker) cleanup(ctx context.Context) {
	cutoff := time.Now().Add(-w.otpValidity)

	purged, err := w.userRepository.PurgeExpiredUnverifiedUsers(ctx, cutoff)
	if err != nil {
		w.logger.Err(err).Str("func", "*OTPCleanupWorker.cleanup").Msg("purge of expired signups failed")
		return
	}

	if purged > 0 {
		w.logger.Info().Int64("purged", purged).Msg("removed expired unverified signups")
	}
}
