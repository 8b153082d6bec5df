package domain

// UserRanking is a derived per-uploader total. It is recomputed on every
// leaderboard read and never stored.
type UserRanking struct {
	Username   string `json:"username"`
	TotalLikes int    `json:"totalLikes"`
}

// Leaderboard holds both top-N views. The Has* flags let callers tell an
// empty board apart from one that was never loaded.
type Leaderboard struct {
	TopMemes    []UploadedMeme `json:"topMemes"`
	TopCreators []UserRanking  `json:"topCreators"`
	HasMemes    bool           `json:"hasMemes"`
	HasRankings bool           `json:"hasRankings"`
}
