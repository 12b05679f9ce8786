package domain

// LogRecord is one access-log line that matched the combined format.
type LogRecord struct {
	ClientAddress     string
	AuthenticatedUser string
	Timestamp         string
	Method            string
	Path              string
	Protocol          string
	StatusCode        string
	ResponseSize      int64
	HasResponseSize   bool
	Referrer          string
	UserAgent         string
}
