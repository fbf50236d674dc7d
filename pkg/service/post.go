package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/soundreel/cli/pkg/api"
	"github.com/soundreel/cli/pkg/config"
	"github.com/soundreel/cli/pkg/formatter"
	"github.com/soundreel/cli/pkg/logger"
	"github.com/soundreel/cli/pkg/media"
	"github.com/soundreel/cli/pkg/player"
)

// PostService handles the single-post flows: creation, viewing, liking
// and standalone playback.
type PostService struct{}

// NewPostService creates a new post service
func NewPostService() *PostService {
	return &PostService{}
}

// Create validates the media files and uploads a new post
func (ps *PostService) Create(ctx context.Context, ownerID string, post api.NewPost) error {
	logger.Debug("Creating post", "owner", ownerID)

	if post.AudioPath != "" {
		validator := NewAudioValidator()
		meta, err := validator.ValidateAudioFile(post.AudioPath)
		if err != nil {
			return fmt.Errorf("audio validation failed: %w", err)
		}
		meta.DisplayMetadata()
	}

	post.OwnerUser = ownerID
	created, err := api.UploadPost(ctx, post)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	formatter.PrintSuccess("Posted! (id %s)", created.ID)
	return nil
}

// View fetches one post with its owner and renders it. The owner lookup
// failing degrades the header, not the view.
func (ps *PostService) View(ctx context.Context, postID string) error {
	logger.Debug("Viewing post", "post", postID)

	post, err := api.GetPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to fetch post: %w", err)
	}

	owner, err := api.GetUser(ctx, post.OwnerUser)
	if err != nil {
		logger.Warn("Post owner lookup failed", "owner", post.OwnerUser, "error", err)
		owner = nil
	}

	if owner != nil {
		fmt.Printf("@%s (%s)\n", owner.UserName, owner.ProfileName)
	} else {
		fmt.Printf("(unknown artist %s)\n", post.OwnerUser)
	}
	if post.Caption != "" {
		fmt.Printf("%s\n", post.Caption)
	}
	for _, link := range post.ParsedOutLinks() {
		fmt.Printf("%s: %s\n", link.Source, link.URL)
	}
	fmt.Printf("%d likes | %s\n", post.LikesCount, formatter.TimeAgo(post.Timestamp, time.Now()))
	if post.AudioRef == "" {
		fmt.Println("(no audio)")
	}
	return nil
}

// Like increments a post's like count and the owner's aggregate. This
// screen re-fetches the owner for the current aggregate rather than
// relying on a cached snapshot.
func (ps *PostService) Like(ctx context.Context, postID string) error {
	logger.Debug("Liking post", "post", postID)

	post, err := api.GetPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to fetch post: %w", err)
	}

	newCount := post.LikesCount + 1
	if err := api.UpdatePost(ctx, postID, map[string]interface{}{
		"likesCount": newCount,
	}); err != nil {
		return fmt.Errorf("failed to write like: %w", err)
	}

	owner, err := api.GetUser(ctx, post.OwnerUser)
	if err != nil {
		logger.Warn("Owner fetch failed, skipping aggregate like update", "owner", post.OwnerUser, "error", err)
	} else if err := api.UpdateUser(ctx, owner.ID, map[string]interface{}{
		"totalLikeCount": owner.TotalLikeCount + 1,
	}); err != nil {
		logger.Warn("Owner like aggregate write failed", "user", owner.ID, "error", err)
	}

	formatter.PrintSuccess("Liked (%d likes)", newCount)
	return nil
}

// Play streams one post's audio until it finishes or the user quits.
// Playback here unloads on completion; replaying starts fresh.
func (ps *PostService) Play(ctx context.Context, postID string, in io.Reader) error {
	post, err := api.GetPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to fetch post: %w", err)
	}
	if post.AudioRef == "" {
		fmt.Println("This post has no audio.")
		return nil
	}

	resolver := media.NewResolver(config.BaseURL())
	url, _ := resolver.Resolve(media.KindAudio, post.AudioRef)

	audio := player.NewController(player.NewStreamEngine())
	defer audio.Dispose()

	if err := audio.Load(url, true, player.FinishUnload); err != nil {
		return fmt.Errorf("no audio available: %w", err)
	}

	fmt.Println("Playing. Commands: [space] pause [s]eek <sec> [q]uit")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		switch intent := parseIntent(scanner.Text()); intent.op {
		case "quit":
			return nil
		case "toggle":
			if err := audio.TogglePlayPause(); err != nil {
				// finished tracks land here; the session unloaded itself
				fmt.Println("Playback finished.")
				return nil
			}
		case "seek":
			if err := audio.Seek(intent.arg); err != nil {
				formatter.PrintWarning("%v", err)
			}
		default:
			snap := audio.Snapshot()
			fmt.Printf("%s / %s\n", formatter.Clock(snap.Position), formatter.Clock(snap.Duration))
		}
	}
}
