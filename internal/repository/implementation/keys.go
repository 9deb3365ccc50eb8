package implementation

// Document keys. With the file driver these become selections.json,
// conversation.json and report_results.json in the store directory.
const (
	SelectionsKey   = "selections"
	ConversationKey = "conversation"
	ReportKey       = "report_results"
)
