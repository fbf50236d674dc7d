package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soundreel/cli/pkg/api"
	"github.com/soundreel/cli/pkg/service"
)

var (
	postCaption   string
	postAudioPath string
	postCoverPath string
	postLinkSpecs []string
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Create and view posts",
}

var postCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Upload a new post",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := service.RequireUser()
		if err != nil {
			return err
		}

		outLinks, err := parseOutLinks(postLinkSpecs)
		if err != nil {
			return err
		}

		return service.NewPostService().Create(cmd.Context(), creds.UserID, api.NewPost{
			Caption:        postCaption,
			OutLinks:       outLinks,
			AudioPath:      postAudioPath,
			AlbumCoverPath: postCoverPath,
		})
	},
}

var postViewCmd = &cobra.Command{
	Use:   "view <post-id>",
	Short: "Show one post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().View(cmd.Context(), args[0])
	},
}

var postLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := service.RequireUser(); err != nil {
			return err
		}
		return service.NewPostService().Like(cmd.Context(), args[0])
	},
}

var postPlayCmd = &cobra.Command{
	Use:   "play <post-id>",
	Short: "Play one post's audio",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().Play(cmd.Context(), args[0], os.Stdin)
	},
}

// parseOutLinks turns "source=url" flag values into the outbound link
// list.
func parseOutLinks(specs []string) ([]api.OutLink, error) {
	var links []api.OutLink
	for _, spec := range specs {
		parts := strings.SplitN(spec, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid link %q, expected source=url", spec)
		}
		links = append(links, api.OutLink{Source: parts[0], URL: parts[1]})
	}
	return links, nil
}

func init() {
	postCreateCmd.Flags().StringVar(&postCaption, "caption", "", "Post caption")
	postCreateCmd.Flags().StringVar(&postAudioPath, "audio", "", "Path to the audio file")
	postCreateCmd.Flags().StringVar(&postCoverPath, "cover", "", "Path to the album cover image")
	postCreateCmd.Flags().StringArrayVar(&postLinkSpecs, "link", nil, "Outbound link as source=url (repeatable)")

	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postViewCmd)
	postCmd.AddCommand(postLikeCmd)
	postCmd.AddCommand(postPlayCmd)
}
