package models

// CompletionStatus tells how a completion request ended.
type CompletionStatus int

const (
	// CompletionOK means Text holds the first choice's content.
	CompletionOK CompletionStatus = iota
	// CompletionEmpty means the service answered without usable content.
	CompletionEmpty
	// CompletionTransportError means the call itself failed or timed out.
	CompletionTransportError
)

func (s CompletionStatus) String() string {
	switch s {
	case CompletionOK:
		return "ok"
	case CompletionEmpty:
		return "empty"
	case CompletionTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Completion is the result of one chat completion call.
type Completion struct {
	Status CompletionStatus
	Text   string
	Err    error // Set only for CompletionTransportError
}
