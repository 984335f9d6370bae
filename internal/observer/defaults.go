package observer

const (
	// retentionWindow bounds how many block records the ledger keeps.
	retentionWindow = 100

	// finalizeReportCount closes a record once this many reports arrived.
	finalizeReportCount = 3

	// finalizeMaxAgeSeconds closes a record that stayed open longer than
	// this many seconds since its first report.
	finalizeMaxAgeSeconds = 3

	unknownNodeID = "unknown_id"
)
