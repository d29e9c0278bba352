package screens

import (
	"context"
	"time"

	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/entity/expense"
	"max.ks1230/slots-tracker/internal/logger"
)

// Poll refreshes every collection each interval until ctx is done. The first
// refresh happens immediately.
func (s *Service) Poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start refreshing collections", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop refreshing collections")
			return
		// fake first tick to refresh immediately
		case <-firstTick:
			s.pollOnce(ctx)
		case <-ticker.C:
			s.pollOnce(ctx)
		}
	}
}

func (s *Service) pollOnce(ctx context.Context) {
	for _, c := range expense.Collections {
		if err := s.Refresh(ctx, c); err != nil {
			logger.Error("cannot refresh collection", zap.String("collection", c), zap.Error(err))
		}
	}
}
