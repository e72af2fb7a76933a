package domain

type Verdict string

const (
	VerdictGo     Verdict = "GO"
	VerdictReview Verdict = "REVIEW"
	VerdictNoGo   Verdict = "NO_GO"
)

// Assessment is the feasibility read on a projection: a verdict plus one
// reason line per metric band that drove it.
type Assessment struct {
	Verdict Verdict
	Reasons []string
}
