// Package job holds background tasks run on the server's cron schedule.
package job

import (
	"github.com/jsprime/prime-cms/database"
	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/util/common"
)

// CheckpointDbJob folds the SQLite WAL back into the main database file
// so the WAL does not grow unbounded between restarts.
type CheckpointDbJob struct{}

func NewCheckpointDbJob() *CheckpointDbJob {
	return new(CheckpointDbJob)
}

// Here Run is an interface method of the cron Job interface
func (j *CheckpointDbJob) Run() {
	defer common.Recover("checkpoint job")

	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
