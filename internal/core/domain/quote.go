package domain

// DateNotSpecified is rendered in the notification when no preferred date was given.
const DateNotSpecified = "Not specified"

// QuoteRequest is a single booking inquiry submitted from the website form.
// It is never stored; each submission is relayed once and discarded.
type QuoteRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Date    string `json:"date,omitempty"`
	Details string `json:"details" binding:"required"`
}

// Missing reports whether any required field is empty.
func (q QuoteRequest) Missing() bool {
	return q.Name == "" || q.Email == "" || q.Phone == "" || q.Details == ""
}

// PreferredDate returns the requested date or the placeholder.
func (q QuoteRequest) PreferredDate() string {
	if q.Date == "" {
		return DateNotSpecified
	}
	return q.Date
}

// EmailMessage is the provider-agnostic notification handed to an EmailSender.
type EmailMessage struct {
	From    string
	To      []string
	Subject string
	Text    string
	ReplyTo string
}
