package domain

// Evaluation bundles everything one scenario run produces. It is built
// fresh per request and discarded after rendering.
type Evaluation struct {
	Assumptions AssumptionSet
	Projection  Projection
	Assessment  Assessment
}
