package service

import (
	"context"
	"fmt"

	"github.com/soundreel/cli/pkg/api"
	"github.com/soundreel/cli/pkg/errors"
	"github.com/soundreel/cli/pkg/logger"
)

// SearchService looks up users by exact username or by genre
type SearchService struct{}

// NewSearchService creates a new search service
func NewSearchService() *SearchService {
	return &SearchService{}
}

// ByUsername does an exact-match lookup. A miss is a message, not an
// error.
func (ss *SearchService) ByUsername(ctx context.Context, username string) error {
	logger.Debug("Searching by username", "username", username)

	user, err := api.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFound(err) {
			fmt.Printf("No user named %q found.\n", username)
			return nil
		}
		return fmt.Errorf("search failed: %w", err)
	}

	displayUserLine(1, *user)
	return nil
}

// ByGenre lists users tagged with a genre
func (ss *SearchService) ByGenre(ctx context.Context, genre string) error {
	logger.Debug("Searching by genre", "genre", genre)

	if !api.IsKnownGenre(genre) {
		return fmt.Errorf("unknown genre %q (choose from %v)", genre, api.GenrePalette)
	}

	users, err := api.SearchUsersByGenre(ctx, genre)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(users) == 0 {
		fmt.Printf("No artists found in %s.\n", genre)
		return nil
	}

	fmt.Printf("Artists in %s:\n", genre)
	for i, u := range users {
		displayUserLine(i+1, u)
	}
	return nil
}

func displayUserLine(n int, u api.User) {
	fmt.Printf("%d. @%s", n, u.UserName)
	if u.ProfileName != "" {
		fmt.Printf(" (%s)", u.ProfileName)
	}
	fmt.Printf(" — %d followers", u.FollowerCount)
	if len(u.Genres) > 0 {
		fmt.Printf(" | %v", u.Genres)
	}
	fmt.Println()
}
