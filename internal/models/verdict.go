package models

// Verdict is the outcome of the release gate: Proceed or Blocked
type Verdict interface {
	isVerdict()
}

type verdictProceed struct{}
type verdictBlocked struct{ Reason string }

func (verdictProceed) isVerdict() {}
func (verdictBlocked) isVerdict() {}

// Proceed indicates the release should go ahead
var Proceed Verdict = verdictProceed{}

// Blocked creates a Verdict explaining why the release must not happen
func Blocked(reason string) Verdict {
	return verdictBlocked{Reason: reason}
}

// IsProceed returns true if v is Proceed
func IsProceed(v Verdict) bool {
	_, ok := v.(verdictProceed)
	return ok
}

// IsBlocked returns true if v is Blocked
func IsBlocked(v Verdict) bool {
	_, ok := v.(verdictBlocked)
	return ok
}

// VerdictReason returns the reason for a Blocked verdict, empty otherwise
func VerdictReason(v Verdict) string {
	if blocked, ok := v.(verdictBlocked); ok {
		return blocked.Reason
	}
	return ""
}

// VerdictResult flattens v into the (ok, reason) pair shown to users
func VerdictResult(v Verdict) (bool, string) {
	return IsProceed(v), VerdictReason(v)
}
