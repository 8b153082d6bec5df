package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/timmy/memeshare/internal/domain"
	"github.com/timmy/memeshare/internal/repository"
)

// ProfileService reads and updates the single user profile.
type ProfileService struct {
	records *repository.RecordRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(records *repository.RecordRepository) *ProfileService {
	return &ProfileService{records: records}
}

// Get returns the stored profile, or the default profile if none was saved.
func (s *ProfileService) Get(ctx context.Context) (domain.UserProfile, error) {
	return s.records.GetProfile(ctx)
}

// Save replaces the profile. Name is required; an empty picture keeps the
// default avatar.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - profile: new profile values.
//
// Returns:
//   - domain.UserProfile: profile as stored.
//   - error: ErrInvalidProfile for a blank name, or a store error.
func (s *ProfileService) Save(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		return domain.UserProfile{}, fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if strings.TrimSpace(profile.ProfilePic) == "" {
		profile.ProfilePic = domain.DefaultProfile().ProfilePic
	}
	if err := s.records.SaveProfile(ctx, profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

// Overview assembles the profile page: the profile, every uploaded meme and
// the uploaded memes this deployment has liked. Liked identifiers that do not
// match an uploaded meme (templates, removed uploads) are skipped.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//
// Returns:
//   - *domain.ProfileOverview: profile page data.
//   - error: non-nil if any record cannot be read.
func (s *ProfileService) Overview(ctx context.Context) (*domain.ProfileOverview, error) {
	profile, err := s.records.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	uploaded, err := s.records.ListUploaded(ctx)
	if err != nil {
		return nil, err
	}
	likedIDs, err := s.records.ListLiked(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.UploadedMeme, len(uploaded))
	for _, m := range uploaded {
		byID[m.ID] = m
	}
	liked := make([]domain.UploadedMeme, 0, len(likedIDs))
	for _, id := range likedIDs {
		if m, ok := byID[id]; ok {
			liked = append(liked, m)
		}
	}

	return &domain.ProfileOverview{
		Profile:     profile,
		Uploaded:    uploaded,
		LikedMemes:  liked,
		HasUploaded: len(uploaded) > 0,
		HasLiked:    len(liked) > 0,
	}, nil
}
