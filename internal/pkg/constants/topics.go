package constants

// NSQ topics for load lifecycle events
const (
	TopicLoadPosted    = "load.posted"
	TopicLoadAccepted  = "load.accepted"
	TopicLoadCompleted = "load.completed"
	TopicLoadReleased  = "load.released"
)
