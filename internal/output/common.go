package output

// Report/map format names. Keep in sync with config.Format*.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// ReportHeader is the first line of the text report.
const ReportHeader = "*** Number of hot channels per sector for merged warnmap ***"
