package domain

// RateSource tags how a rate resolution was satisfied.
type RateSource string

const (
	// RateSourceExactDate means a rate dated exactly on the requested date was found.
	RateSourceExactDate RateSource = "EXACT_DATE"
	// RateSourceMostRecent means the most recent rate for the pair was used as a fallback.
	RateSourceMostRecent RateSource = "MOST_RECENT"
	// RateSourceNone means no rate exists for the pair. Callers must treat this
	// as a hard failure; substituting 1.0 is forbidden.
	RateSourceNone RateSource = "NONE"
)

// RateResolution is the tagged outcome of a rate lookup. Rate is nil exactly
// when Source is RateSourceNone, so the "no rate" case cannot be coerced into
// a usable number by accident.
type RateResolution struct {
	Rate   *ExchangeRate `json:"rate,omitempty"`
	Source RateSource    `json:"source"`
}

// Resolved reports whether the resolution carries a usable rate.
func (r RateResolution) Resolved() bool {
	return r.Source != RateSourceNone && r.Rate != nil
}
