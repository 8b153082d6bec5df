package store

// Fixed record keys.
const (
	KeyUploadedMemes = "uploadedMemes"
	KeyUserProfile   = "userProfile"
	KeyLikedMemes    = "likedMemes"
)

// LikesKey is the counter key for a meme identifier.
func LikesKey(memeID string) string {
	return "likes-" + memeID
}

// CommentsKey is the comment sequence key for a meme identifier.
func CommentsKey(memeID string) string {
	return "comments-" + memeID
}
