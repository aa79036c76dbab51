package pipeline

// Result summarizes one run for the caller's exit-status decision and
// debug logging.
type Result struct {
	SubBricks int  // Entries parsed from the report.
	Lookup    bool // A single name was requested.
	Found     bool // Lookup mode only: the name was present.
	ToolExit  int  // Inspection command exit status (0 when not run).
}
