package feedback

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is the no-database fallback.
type MemoryRepo struct {
	mu       sync.Mutex
	messages []Message
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// SaveMessage appends one feedback message.
func (r *MemoryRepo) SaveMessage(ctx context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	r.messages = append(r.messages, msg)
	return nil
}

// Messages returns a copy of the stored messages, for tests and debugging.
func (r *MemoryRepo) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}
