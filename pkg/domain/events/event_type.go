package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	// Customer events
	EventTypeCustomerRegistered EventType = "Customer.Registered"

	// Account events
	EventTypeAccountOpened EventType = "Account.Opened"

	// Transaction events
	EventTypeTransactionApplied  EventType = "Transaction.Applied"
	EventTypeTransactionRejected EventType = "Transaction.Rejected"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// Event is anything the bus can dispatch.
type Event interface {
	Type() string
}
