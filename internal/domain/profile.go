package domain

// UserProfile is the singleton profile of this deployment. Saving replaces
// every field.
type UserProfile struct {
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	ProfilePic string `json:"profilePic"`
}

// DefaultProfile returns the profile shown before the user saves one.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:       "Meme Enthusiast",
		Bio:        "Lover of all things funny!",
		ProfilePic: "/default-avatar.png",
	}
}

// ProfileOverview bundles the profile with the memes it uploaded and liked.
type ProfileOverview struct {
	Profile     UserProfile    `json:"profile"`
	Uploaded    []UploadedMeme `json:"uploaded"`
	LikedMemes  []UploadedMeme `json:"likedMemes"`
	HasUploaded bool           `json:"hasUploaded"`
	HasLiked    bool           `json:"hasLiked"`
}
