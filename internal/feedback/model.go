package feedback

import "time"

// Message is one free-form feedback submission. It is the system of record
// for shared feedback; there is no outbound notification.
type Message struct {
	ID         string
	Message    string
	Email      string
	AnalysisID string
	SessionID  string
	Lang       string
	Purpose    string
	Target     string
	CreatedAt  time.Time
}
