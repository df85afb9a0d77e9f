package constants

// NSQ topics for trip lifecycle and operational events
const (
	TopicTripAssigned  = "trip.assigned"
	TopicTripStarted   = "trip.started"
	TopicTripCompleted = "trip.completed"
	TopicCostLogged    = "ops.cost.logged"
)
