package feedback

import "context"

// Repo persists feedback messages.
type Repo interface {
	SaveMessage(ctx context.Context, msg Message) error
}
