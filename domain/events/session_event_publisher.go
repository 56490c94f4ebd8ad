package events

// SessionEventPublisher defines the interface for publishing session lifecycle events.
type SessionEventPublisher interface {
	PublishSessionCreated(event SessionCreatedEvent)
	PublishSessionsPruned(event SessionsPrunedEvent)
}
