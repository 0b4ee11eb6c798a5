package storefront

// Status tracks the last inquiry submission: idle -> sending -> success|failure.
// success and failure stay on screen until the next submission.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

const (
	MessageSending = "Sending..."
	MessageSuccess = "Thanks! We will contact you shortly."
	MessageFailure = "Something went wrong. Please try again."
)

// Message is the text shown under the inquiry form.
func (s Status) Message() string {
	switch s {
	case StatusSending:
		return MessageSending
	case StatusSuccess:
		return MessageSuccess
	case StatusFailure:
		return MessageFailure
	default:
		return ""
	}
}
