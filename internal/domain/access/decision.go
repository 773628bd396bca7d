package access

// Decision is the outcome of a gate: either let the request through or redirect it.
type Decision struct {
	Allowed    bool
	RedirectTo string
	Reason     string
}

// Allow lets the request continue.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Redirect sends the request to target. Reason is only used for logging.
func Redirect(target, reason string) Decision {
	return Decision{RedirectTo: target, Reason: reason}
}
