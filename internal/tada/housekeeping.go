package tada

import (
	"fmt"

	"github.com/colonyops/tada/internal/core/config"
	"github.com/colonyops/tada/internal/core/list"
)

// Housekeeping returns reminders to archive or tidy when lst has collected
// more finished tasks or blank lines than the configured thresholds.
func Housekeeping(lst *list.List, cfg config.HousekeepingConfig) []string {
	var notices []string
	if n := lst.CountCompleted(); n > cfg.FinishedThreshold {
		notices = append(notices, fmt.Sprintf("There are %d finished tasks. Consider running `tada archive`.", n))
	}
	if n := lst.CountBlank(); n > cfg.BlankThreshold {
		notices = append(notices, fmt.Sprintf("There are %d blank/comment lines. Consider running `tada tidy`.", n))
	}
	return notices
}
