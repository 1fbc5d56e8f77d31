package serverctl

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/appspec/harness/database"
	"github.com/appspec/harness/harnesscfg"
	"github.com/appspec/harness/logger"
)

// RETENTION_CHECK_INTERVAL - how often finished runs are considered for pruning
const RETENTION_CHECK_INTERVAL = time.Hour

// RetentionCheckpoint - prunes finished runs older than the retention window.
// Pending and running records are never touched, a stuck run should stay
// visible until someone aborts it.
func RetentionCheckpoint() error {
	if harnesscfg.IsRetentionDisabled() {
		return nil
	}
	retention := time.Duration(harnesscfg.GetRunRetentionHours()) * time.Hour
	cutoff := time.Now().UTC().Add(-retention)

	runs, err := database.GetRuns()
	if err != nil {
		return err
	}
	pruned := 0
	for i := range runs {
		run := runs[i]
		if !run.IsFinished() || run.FinishedAt.IsZero() || run.FinishedAt.After(cutoff) {
			continue
		}
		if err := database.DeleteRun(run.ID); err != nil {
			logger.Log(1, "failed to prune run", run.ID, err.Error())
			continue
		}
		pruned++
	}
	if pruned > 0 {
		logger.Log(1, "pruned", strconv.Itoa(pruned), "old runs")
	}
	return nil
}

// StartRetentionTimer - runs the retention checkpoint on an interval until
// the context is done, flushing the in-memory log ledger to disk as it goes
func StartRetentionTimer(ctx context.Context) {
	ticker := time.NewTicker(RETENTION_CHECK_INTERVAL)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := RetentionCheckpoint(); err != nil {
				logger.Log(1, "retention checkpoint error:", err.Error())
			}
			logger.DumpFile(fmt.Sprintf(logger.DumpFilePattern, time.Now().Format(logger.TimeFormatDay)))
		}
	}
}
