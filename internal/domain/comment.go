package domain

// Comment is a single remark attached to a meme identifier. Comments are
// append-only; memeId is not checked against any known meme.
type Comment struct {
	ID        string `json:"id"`
	MemeID    string `json:"memeId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

// InteractionSummary is the per-meme view of likes and comments.
type InteractionSummary struct {
	MemeID   string    `json:"memeId"`
	Likes    int       `json:"likes"`
	Comments []Comment `json:"comments"`
}
