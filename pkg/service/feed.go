package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/soundreel/cli/pkg/config"
	"github.com/soundreel/cli/pkg/feed"
	"github.com/soundreel/cli/pkg/formatter"
	"github.com/soundreel/cli/pkg/media"
	"github.com/soundreel/cli/pkg/player"
)

// FeedService drives the interactive feed session
type FeedService struct {
	controller *feed.Controller
}

// NewFeedService builds a feed session for the signed-in viewer
func NewFeedService(viewerID string) *FeedService {
	resolver := media.NewResolver(config.BaseURL())
	audio := player.NewController(player.NewStreamEngine())
	return &FeedService{
		controller: feed.NewController(feed.APIBackend{}, audio, resolver, viewerID),
	}
}

// sessionIntent is one parsed key command from the session loop
type sessionIntent struct {
	op  string
	arg float64
}

// parseIntent maps a session input line to an intent; unknown input
// maps to help.
func parseIntent(line string) sessionIntent {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return sessionIntent{op: "help"}
	}

	switch fields[0] {
	case "n", "next":
		return sessionIntent{op: "next"}
	case "p", "prev", "previous":
		return sessionIntent{op: "prev"}
	case "space", "pause", "play":
		return sessionIntent{op: "toggle"}
	case "l", "like":
		return sessionIntent{op: "like"}
	case "e", "expand":
		return sessionIntent{op: "expand"}
	case "c", "collapse":
		return sessionIntent{op: "collapse"}
	case "s", "seek":
		if len(fields) > 1 {
			if secs, err := strconv.ParseFloat(fields[1], 64); err == nil {
				return sessionIntent{op: "seek", arg: secs}
			}
		}
		return sessionIntent{op: "help"}
	case "q", "quit", "exit":
		return sessionIntent{op: "quit"}
	default:
		return sessionIntent{op: "help"}
	}
}

// Run loads the first page and loops on user intents until quit. The
// playback controller is disposed on every exit path so no audio
// outlives the session.
func (fs *FeedService) Run(ctx context.Context, in io.Reader) error {
	defer fs.controller.Dispose()

	if err := fs.controller.LoadInitialPage(ctx); err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}

	if fs.controller.Len() == 0 {
		fmt.Println("Your feed is empty. Follow some artists to fill it up.")
		return nil
	}

	fs.renderCurrent()
	fmt.Println("Commands: [n]ext [p]rev [space] pause [s]eek <sec> [l]ike [e]xpand [q]uit")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		intent := parseIntent(scanner.Text())
		switch intent.op {
		case "quit":
			return nil
		case "next":
			if err := fs.controller.Advance(ctx); err != nil {
				formatter.PrintError("%v", err)
				continue
			}
		case "prev":
			fs.controller.Retreat()
		case "toggle":
			if err := fs.controller.TogglePlayPause(); err != nil {
				formatter.PrintWarning("%v", err)
				continue
			}
		case "seek":
			if err := fs.controller.Seek(intent.arg); err != nil {
				formatter.PrintWarning("%v", err)
				continue
			}
		case "like":
			cur, ok := fs.controller.Current()
			if !ok {
				continue
			}
			if err := fs.controller.ToggleLike(ctx, cur.Post.ID); err != nil {
				formatter.PrintError("%v", err)
				continue
			}
		case "expand":
			if cur, ok := fs.controller.Current(); ok {
				fs.controller.ExpandCaption(cur.Post.ID)
			}
		case "collapse":
			if cur, ok := fs.controller.Current(); ok {
				fs.controller.CollapseCaption(cur.Post.ID)
			}
		default:
			fmt.Println("Commands: [n]ext [p]rev [space] pause [s]eek <sec> [l]ike [e]xpand [q]uit")
			continue
		}
		fs.renderCurrent()
	}
}

// Show prints the current feed page without entering a session
func (fs *FeedService) Show(ctx context.Context) error {
	defer fs.controller.Dispose()

	if err := fs.controller.LoadInitialPage(ctx); err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}

	entries := fs.controller.Entries()
	if len(entries) == 0 {
		fmt.Println("Your feed is empty.")
		return nil
	}

	for i, e := range entries {
		fmt.Printf("%d. %s\n", i+1, entryHeadline(e))
		if e.Post.Caption != "" {
			fmt.Printf("   %s\n", formatter.TruncateCaption(e.Post.Caption, false))
		}
		fmt.Printf("   %d likes | %s\n\n", e.Post.LikesCount, formatter.TimeAgo(e.Post.Timestamp, time.Now()))
	}
	return nil
}

func (fs *FeedService) renderCurrent() {
	cur, ok := fs.controller.Current()
	if !ok {
		fmt.Println("Feed is empty.")
		return
	}

	fmt.Printf("\n[%d/%d] %s\n", fs.controller.Index()+1, fs.controller.Len(), entryHeadline(cur))

	if cur.Post.Caption != "" {
		caption := formatter.TruncateCaption(cur.Post.Caption, fs.controller.IsCaptionExpanded(cur.Post.ID))
		fmt.Printf("  %s\n", caption)
	}
	for _, link := range cur.Post.ParsedOutLinks() {
		fmt.Printf("  %s: %s\n", link.Source, link.URL)
	}

	liked := " "
	if cur.Liked {
		liked = "*"
	}
	fmt.Printf("  [%s] %d likes | %s\n", liked, cur.Post.LikesCount, formatter.TimeAgo(cur.Post.Timestamp, time.Now()))

	fs.renderPlayback(cur)
}

func (fs *FeedService) renderPlayback(cur feed.Entry) {
	if cur.Post.AudioRef == "" {
		fmt.Println("  (no audio)")
		return
	}

	snap := fs.controller.Playback()
	state := "paused"
	if snap.Playing {
		state = "playing"
	}
	if fs.controller.PlaybackState() != player.StateReady {
		state = "no audio available"
	}
	fmt.Printf("  %s %s / %s\n", state, formatter.Clock(snap.Position), formatter.Clock(snap.Duration))
}

func entryHeadline(e feed.Entry) string {
	if e.Owner != nil {
		name := e.Owner.ProfileName
		if name == "" {
			name = e.Owner.UserName
		}
		return fmt.Sprintf("@%s (%s)", e.Owner.UserName, name)
	}
	// owner hydration failed or is pending
	return fmt.Sprintf("(unknown artist %s)", e.Post.OwnerUser)
}
