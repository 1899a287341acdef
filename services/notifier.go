package services

// Event names pushed to connected observers.
const (
	EventOrderCreated       = "orderCreated"
	EventOrderUpdated       = "orderUpdated"
	EventOrderStatusUpdated = "orderStatusUpdated"
	EventTablesUpdated      = "tablesUpdated"
)

// Notifier fans a named event out to every connected observer. Delivery is
// best-effort and must never block or fail the mutation that triggered it;
// services emit only after the state change has committed.
type Notifier interface {
	Emit(event string, payload any)
}

// NopNotifier drops everything. Default when no hub is attached.
type NopNotifier struct{}

func (NopNotifier) Emit(string, any) {}
