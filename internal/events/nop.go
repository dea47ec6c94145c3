package events

import (
	"context"

	"github.com/go-ddd-example/order-service/internal/domain"
)

// NopPublisher discards events. It is the default wiring when no broker
// is configured; delivery guarantees are out of scope.
type NopPublisher struct{}

func NewNopPublisher() NopPublisher {
	return NopPublisher{}
}

func (NopPublisher) Publish(ctx context.Context, events []domain.Event) error {
	return nil
}
