package logging

// Field keys shared by handlers, services and provider wrappers.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"

	// scrape and odds lookups
	FieldType   = "type"
	FieldTeam   = "team"
	FieldLeague = "league"
	FieldCount  = "count"
)
