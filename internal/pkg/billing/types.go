package billing

import "errors"

// Sentinel errors for the webhook processing exits that the HTTP boundary
// needs to tell apart. Everything else that bubbles up is a persistence
// failure and maps to a 5xx so the platform redelivers.
var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrDuplicateEvent   = errors.New("event already processed")
)

// Outcome labels the result of one webhook delivery for logs and counters.
type Outcome string

const (
	OutcomeProcessed      Outcome = "processed"
	OutcomeDuplicate      Outcome = "duplicate"
	OutcomeMalformed      Outcome = "malformed"
	OutcomeUnknownAccount Outcome = "unknown_account"
	OutcomeIgnored        Outcome = "ignored"
	OutcomeRejected       Outcome = "rejected"
)

// Outcomes lists every outcome, in the order the stats endpoint reports them.
var Outcomes = []Outcome{
	OutcomeProcessed,
	OutcomeDuplicate,
	OutcomeMalformed,
	OutcomeUnknownAccount,
	OutcomeIgnored,
	OutcomeRejected,
}
