package list_blocked_times

import (
	"time"

	"github.com/glowtress/booking-service/internal/domain"
)

// BlockedTimeResponse HTTP model of a blocked window.
type BlockedTimeResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}

// BlockedTimeListResponse wraps the listing.
type BlockedTimeListResponse struct {
	BlockedTimes []BlockedTimeResponse `json:"blockedTimes"`
	Total        int                   `json:"total"`
}

// FromDomainList converts the blocked windows into the HTTP response.
func FromDomainList(blocked []*domain.BlockedTime) *BlockedTimeListResponse {
	out := make([]BlockedTimeResponse, len(blocked))
	for i, b := range blocked {
		out[i] = BlockedTimeResponse{
			ID:        b.ID,
			Date:      b.Date.Format(domain.DateFormat),
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
			Reason:    b.Reason,
			CreatedAt: b.CreatedAt.Format(time.RFC3339),
		}
	}
	return &BlockedTimeListResponse{BlockedTimes: out, Total: len(out)}
}
