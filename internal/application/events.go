package application

import "context"

// EventPublisher hands messages to the broker. helpers.RabbitPublisher
// satisfies it; a nil publisher disables publishing.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}
