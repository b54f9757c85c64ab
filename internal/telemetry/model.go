package telemetry

import "time"

// Event is one analysis event row, keyed by analysis id. The raw prompt text
// is never part of an event.
type Event struct {
	AnalysisID    string
	SessionID     string
	Lang          string
	Target        string
	Purpose       string
	TaskType      string
	EngineVersion string

	Score        int
	Confidence   int
	Words        int
	ApproxTokens int

	FindingIDs []string
	RecoIDs    []string

	OutputFormatKind   string
	OutputFormatStrict *bool

	Helpful    string
	Reason     string
	FeedbackAt *time.Time

	TS        time.Time
	ExpiresAt time.Time
}

// Session is one anonymous browser session.
type Session struct {
	SessionID    string
	Lang         string
	FirstSeenAt  time.Time
	LastSeenAt   time.Time
	LastSeenDate string
}

// DayKey formats a time as the UTC day bucket used by daily metrics.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
