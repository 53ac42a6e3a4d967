package athlete

import "github.com/mauv0809/fighter-franchise/internal/money"

// Athlete is a fighter the franchise can buy and sell.
type Athlete struct {
	ID        int          `json:"id,omitempty"`
	Name      string       `json:"name"`
	Gender    string       `json:"gender"`
	Price     money.Amount `json:"price"`
	Image     string       `json:"image"`
	Purchased bool         `json:"purchased"`
}

func (a Athlete) RecordID() int { return a.ID }

// WithImage returns a copy of a using fileName as its image.
func WithImage(a Athlete, fileName string) Athlete {
	a.Image = fileName
	return a
}
