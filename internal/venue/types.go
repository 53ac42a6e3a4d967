package venue

// Venue is a location fights can be held at.
type Venue struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Image    string `json:"image,omitempty"`
}

func (v Venue) RecordID() int { return v.ID }

func withImage(v Venue, fileName string) Venue {
	v.Image = fileName
	return v
}
