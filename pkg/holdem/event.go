package holdem

// Event describes a state change in a form suitable for relaying to
// observers. Details is a flat set of wire fields keyed by convention
// ("action", "phase", "winner", "pots", ...).
type Event struct {
	Name    string
	Details map[string]interface{}
}

func newEvent(name string) *Event {
	return &Event{
		Name:    name,
		Details: make(map[string]interface{}),
	}
}

func (e *Event) with(key string, value interface{}) *Event {
	e.Details[key] = value
	return e
}

// Payload returns the outgoing message for this event
func (e *Event) Payload() map[string]interface{} {
	payload := make(map[string]interface{}, len(e.Details)+2)
	for k, v := range e.Details {
		payload[k] = v
	}

	payload["type"] = "event"
	payload["event"] = e.Name
	return payload
}
