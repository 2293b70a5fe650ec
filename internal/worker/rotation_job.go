package worker

import (
	"context"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/logger"
)

// Rotator runs one storage rotation pass
type Rotator interface {
	Rotate(ctx context.Context) (domain.RotationResult, error)
}

// RotationJob wraps a rotation pass as a pool job. It catches quota overruns from
// files written outside a state save, such as report snapshots.
func RotationJob(r Rotator) Job {
	return JobFunc(func(ctx context.Context) error {
		log := logger.FromContext(ctx)

		res, err := r.Rotate(ctx)
		if err != nil {
			log.Error(LogMsgRotationError, "error", err)
			return err
		}
		if len(res.Removed) == 0 {
			log.Debug(LogMsgRotationIdle, "used_bytes", res.UsedBefore, "quota_bytes", res.QuotaBytes)
			return nil
		}
		log.Info(LogMsgRotationPass, "removed", len(res.Removed), "bytes_freed", res.BytesFreed)
		return nil
	})
}
