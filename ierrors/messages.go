package ierrors

// error message templates used with Errorf.
const (
	TransportOpenError  = "transport: cannot open %v: %v"
	TransportReadError  = "transport: read error: %v"
	TransportWriteError = "transport: write error: %v"
	TransportClosed     = "transport: port already closed"

	FlagError = "flag error: %v"
)
