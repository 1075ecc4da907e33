package domain

import (
	"time"

	"github.com/glowtress/booking-service/pkg/types"
)

// BlockedTime is a manually blocked window on a given date: travel, personal
// time, supply runs. Candidate slots overlapping it are never offered.
type BlockedTime struct {
	ID        int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    string
	CreatedAt time.Time
}
