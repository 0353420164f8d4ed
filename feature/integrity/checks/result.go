package checks

// Check statuses.
const (
	StatusOK       = "ok"
	StatusMissing  = "missing"
	StatusDisabled = "disabled"
	StatusError    = "error"
)

// Result is the outcome of one readiness check.
type Result struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
	Fixed  bool   `json:"fixed,omitempty"`
}

// Healthy reports whether the check passed or was turned off.
func (r Result) Healthy() bool {
	return r.Status == StatusOK || r.Status == StatusDisabled
}

func failed(err error) Result {
	return Result{Status: StatusError, Detail: err.Error()}
}
