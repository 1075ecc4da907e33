package list_messages

import (
	"time"

	"github.com/glowtress/booking-service/internal/domain"
)

// MessageResponse HTTP model of a thread entry.
type MessageResponse struct {
	ID        int64  `json:"id"`
	Sender    string `json:"sender"`
	Body      string `json:"body"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

// MessageListResponse wraps a thread.
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
}

// FromDomainList converts the thread into the HTTP response.
func FromDomainList(messages []*domain.Message) *MessageListResponse {
	out := make([]MessageResponse, len(messages))
	for i, m := range messages {
		out[i] = MessageResponse{
			ID:        m.ID,
			Sender:    string(m.Sender),
			Body:      m.Body,
			Read:      m.Read,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		}
	}
	return &MessageListResponse{Messages: out, Total: len(out)}
}
