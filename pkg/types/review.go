package types

// Rating bounds for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// DateLayout is the on-disk format for record dates.
const DateLayout = "2006-01-02"

// Review is one member's opinion of one book. A (BookID, UserID) pair
// holds at most one review; a second submission overwrites the first in
// place, keeping the id.
type Review struct {
	ID     int    `json:"id"`
	BookID int    `json:"book_id"`
	UserID int    `json:"user_id"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// ValidRating reports whether r falls inside [MinRating, MaxRating].
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
