package core

// Sighting is a single wildlife observation as persisted in the store.
type Sighting struct {
	ID       int64  `json:"id"`
	Species  string `json:"species"`
	Location string `json:"location"`
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // HH:MM
}

// SightingInput holds the caller-supplied fields of a sighting.
// The id is always assigned by the store.
type SightingInput struct {
	Species  string
	Location string
	Date     string
	Time     string
}

// WithID returns the sighting formed by the input and a store-assigned id.
func (in SightingInput) WithID(id int64) *Sighting {
	return &Sighting{
		ID:       id,
		Species:  in.Species,
		Location: in.Location,
		Date:     in.Date,
		Time:     in.Time,
	}
}
