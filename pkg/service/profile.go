package service

import (
	"context"
	"fmt"
	"time"

	"github.com/soundreel/cli/pkg/api"
	"github.com/soundreel/cli/pkg/config"
	"github.com/soundreel/cli/pkg/formatter"
	"github.com/soundreel/cli/pkg/logger"
	"github.com/soundreel/cli/pkg/media"
	"github.com/soundreel/cli/pkg/profile"
)

// ProfileService renders and edits profiles
type ProfileService struct {
	controller *profile.Controller
}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	resolver := media.NewResolver(config.BaseURL())
	return &ProfileService{
		controller: profile.NewController(profile.APIBackend{}, resolver),
	}
}

// View loads and renders a user's profile
func (ps *ProfileService) View(ctx context.Context, userID string) error {
	logger.Debug("Viewing profile", "user", userID)

	if err := ps.controller.LoadProfile(ctx, userID); err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	ps.render()
	return nil
}

// Refresh re-loads and re-renders a profile
func (ps *ProfileService) Refresh(ctx context.Context, userID string) error {
	logger.Debug("Refreshing profile", "user", userID)

	if err := ps.controller.Refresh(ctx, userID); err != nil {
		return fmt.Errorf("failed to refresh profile: %w", err)
	}

	ps.render()
	return nil
}

func (ps *ProfileService) render() {
	v := ps.controller.View()
	if v == nil {
		fmt.Println("No profile loaded.")
		return
	}

	formatter.Bold.Printf("@%s", v.User.UserName)
	if v.User.ProfileName != "" {
		fmt.Printf(" — %s", v.User.ProfileName)
	}
	fmt.Println()

	if v.User.ProfileDescription != "" {
		fmt.Println(v.User.ProfileDescription)
	}
	if len(v.User.Genres) > 0 {
		fmt.Printf("Genres: %v\n", v.User.Genres)
	}
	fmt.Printf("%d followers | %d total likes\n", v.User.FollowerCount, v.User.TotalLikeCount)
	if profile.HasPlaceholderAvatar(v) {
		fmt.Println("(no avatar)")
	} else {
		fmt.Printf("Avatar: %d bytes\n", len(v.Avatar))
	}

	if len(v.Posts) == 0 {
		fmt.Println("\nNo posts yet.")
		return
	}

	fmt.Printf("\nPosts (%d):\n", len(v.Posts))
	for i, p := range v.Posts {
		fmt.Printf("%d. %s", i+1, formatter.TruncateCaption(p.Post.Caption, false))
		if p.Post.Caption == "" {
			fmt.Printf("(untitled)")
		}
		fmt.Println()
		fmt.Printf("   %d likes | %s", p.Post.LikesCount, formatter.TimeAgo(p.Post.Timestamp, time.Now()))
		if p.AlbumArt != nil {
			fmt.Printf(" | cover %d bytes", len(p.AlbumArt))
		}
		if p.AudioURL == "" {
			fmt.Printf(" | no audio")
		}
		fmt.Println()
	}
}

// Following lists the users this profile follows
func (ps *ProfileService) Following(ctx context.Context, userID string) error {
	logger.Debug("Listing following", "user", userID)

	users, err := ps.controller.LoadFollowing(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load following: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("Not following anyone yet.")
		return nil
	}

	for i, u := range users {
		fmt.Printf("%d. @%s", i+1, u.UserName)
		if u.ProfileName != "" {
			fmt.Printf(" (%s)", u.ProfileName)
		}
		fmt.Printf(" — %d followers\n", u.FollowerCount)
	}
	return nil
}

// Edit updates the profile, optionally replacing the avatar
func (ps *ProfileService) Edit(ctx context.Context, userID string, edit api.ProfileEdit) error {
	logger.Debug("Editing profile", "user", userID)

	if err := api.UpdateUserProfile(ctx, userID, edit); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	formatter.PrintSuccess("Profile updated.")
	return nil
}

// SetGenres writes the user's genre selection. Every genre must come
// from the fixed palette.
func (ps *ProfileService) SetGenres(ctx context.Context, userID string, genres []string) error {
	for _, g := range genres {
		if !api.IsKnownGenre(g) {
			return fmt.Errorf("unknown genre %q (choose from %v)", g, api.GenrePalette)
		}
	}

	if err := api.UpdateUser(ctx, userID, map[string]interface{}{
		"genres": genres,
	}); err != nil {
		return fmt.Errorf("failed to save genres: %w", err)
	}

	formatter.PrintSuccess("Genres saved: %v", genres)
	return nil
}
