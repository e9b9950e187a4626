package cli

// Exit codes.
const (
	ExitOK       = 0 // success
	ExitCallErr  = 1 // Nuke rejected the operation or is unreachable
	ExitUsageErr = 2 // bad flags, unknown command, invalid arguments
	ExitInternal = 3 // config failure or malformed reply from the add-on
)
