package types

// Share is a directed book recommendation from one member to another.
// Sender and recipient must differ. Shares are immutable once created.
type Share struct {
	ID         int    `json:"id"`
	FromUserID int    `json:"from_user_id"`
	ToUserID   int    `json:"to_user_id"`
	BookID     int    `json:"book_id"`
	Date       string `json:"date"`
	Note       string `json:"note,omitempty"`
}
