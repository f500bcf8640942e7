package exitcode

const (
	Success      = 0
	UsageError   = 1
	NoMatchError = 2 // every facility query resolved to nothing
	NoDataError  = 3 // facilities resolved but no source had their rows
	ReadError    = 4
	WriteError   = 5
)
