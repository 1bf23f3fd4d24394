package skyscanner

import "encoding/json"

// The upstream payload shape is not contractually guaranteed, so every field
// in these types is optional: pointers for scalars whose absence matters,
// zero values everywhere else. Normalization substitutes documented defaults
// instead of failing.

// autoCompleteResponse is the payload of the auto-complete endpoint.
type autoCompleteResponse struct {
	Data []autoCompleteCandidate `json:"data"`
}

// autoCompleteCandidate is one place suggestion. Only the presentation
// identifier is read; everything else is ignored.
type autoCompleteCandidate struct {
	Presentation candidatePresentation `json:"presentation"`
}

type candidatePresentation struct {
	ID string `json:"id"`
}

// searchResponse is the payload of the search-roundtrip endpoint.
type searchResponse struct {
	Data searchData `json:"data"`
}

type searchData struct {
	Itineraries []rawItinerary `json:"itineraries"`
}

// rawItinerary is one round-trip offer as the upstream reports it.
type rawItinerary struct {
	Price *rawPrice `json:"price"`
	Legs  []rawLeg  `json:"legs"`
}

type rawPrice struct {
	Raw *float64 `json:"raw"`
}

// rawLeg is one directional leg. Segments are passed through opaquely.
type rawLeg struct {
	Departure string            `json:"departure"`
	Arrival   string            `json:"arrival"`
	StopCount *int              `json:"stopCount"`
	Carriers  *rawCarriers      `json:"carriers"`
	Segments  []json.RawMessage `json:"segments"`
}

type rawCarriers struct {
	Marketing []rawCarrier `json:"marketing"`
}

type rawCarrier struct {
	Name string `json:"name"`
}
