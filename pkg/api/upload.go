package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"

	"github.com/soundreel/cli/pkg/client"
	"github.com/soundreel/cli/pkg/errors"
	"github.com/soundreel/cli/pkg/logger"
)

// NewPost describes a post to be created. AudioPath and AlbumCoverPath
// are local file paths; empty means the post carries no media of that kind.
type NewPost struct {
	OwnerUser      string
	Caption        string
	OutLinks       []OutLink
	AudioPath      string
	AlbumCoverPath string
}

// ProfileEdit describes a multipart profile update. AvatarPath is a local
// file path; empty means the avatar is left unchanged.
type ProfileEdit struct {
	ProfileName        string
	ProfileDescription string
	Genres             []string
	AvatarPath         string
}

// UploadPost creates a post via multipart form submission
func UploadPost(ctx context.Context, post NewPost) (*Post, error) {
	logger.Debug("Uploading post", "owner_user", post.OwnerUser)

	outLinks, err := json.Marshal(post.OutLinks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode out links: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"ownerUser":  post.OwnerUser,
		"likesCount": strconv.Itoa(0),
		"caption":    post.Caption,
		"outLinks":   string(outLinks),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write form field: %w", err)
		}
	}

	if post.AudioPath != "" {
		if err := attachFile(writer, "audio", post.AudioPath); err != nil {
			return nil, err
		}
	}
	if post.AlbumCoverPath != "" {
		if err := attachFile(writer, "albumCover", post.AlbumCoverPath); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	var created Post
	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetHeader("Content-Type", writer.FormDataContentType()).
		SetBody(body.Bytes()).
		SetResult(&created).
		Post("/api/upload/uploadPost")

	if err != nil {
		return nil, errors.CategorizeError(err)
	}

	if !resp.IsSuccess() {
		return nil, errors.HTTPError(resp.StatusCode(), "failed to upload post")
	}

	return &created, nil
}

// UpdateUserProfile PUTs a multipart profile edit, optionally replacing
// the avatar
func UpdateUserProfile(ctx context.Context, userID string, edit ProfileEdit) error {
	logger.Debug("Updating profile", "user_id", userID)

	genres, err := json.Marshal(edit.Genres)
	if err != nil {
		return fmt.Errorf("failed to encode genres: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"profileName":        edit.ProfileName,
		"profileDescription": edit.ProfileDescription,
		"genres":             string(genres),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}

	if edit.AvatarPath != "" {
		if err := attachFile(writer, "userAvatar", edit.AvatarPath); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	resp, err := client.GetClient().
		R().
		SetContext(ctx).
		SetHeader("Content-Type", writer.FormDataContentType()).
		SetBody(body.Bytes()).
		Put(fmt.Sprintf("/api/user/%s", userID))

	if err != nil {
		return errors.CategorizeError(err)
	}

	if !resp.IsSuccess() {
		return errors.HTTPError(resp.StatusCode(), "failed to update profile")
	}

	return nil
}

// attachFile adds a local file as a binary form part
func attachFile(writer *multipart.Writer, field, path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.FileNotFoundError(path)
		}
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy file: %w", err)
	}

	return nil
}
