package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"github.com/soundreel/cli/pkg/logger"
)

// validAudioFormats are the container formats the backend accepts
var validAudioFormats = map[string]bool{
	"mp3": true,
	"wav": true,
	"m4a": true,
	"aac": true,
	"ogg": true,
}

// AudioValidator checks an upload candidate before the multipart POST
// goes out.
type AudioValidator struct {
	MaxFileSizeMB int
}

// AudioMetadata holds what could be read from the file's tags
type AudioMetadata struct {
	Format   string
	Title    string
	Artist   string
	Album    string
	FileSize int64
}

// NewAudioValidator creates a validator with the default size cap
func NewAudioValidator() *AudioValidator {
	return &AudioValidator{MaxFileSizeMB: 50}
}

// ValidateAudioFile validates an upload candidate and extracts its tags
func (av *AudioValidator) ValidateAudioFile(filePath string) (*AudioMetadata, error) {
	logger.Debug("Validating audio file", "path", filePath)

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}

	sizeMB := float64(fileInfo.Size()) / (1024 * 1024)
	if int(sizeMB) > av.MaxFileSizeMB {
		return nil, fmt.Errorf("file too large: %.1f MB (max: %d MB)", sizeMB, av.MaxFileSizeMB)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")
	if !validAudioFormats[format] {
		return nil, fmt.Errorf("unsupported audio format: .%s (supported: mp3, wav, m4a, aac, ogg)", format)
	}

	metadata := &AudioMetadata{
		Format:   format,
		FileSize: fileInfo.Size(),
	}
	if err := av.extractMetadata(filePath, metadata); err != nil {
		// tags are optional; a bare file still uploads fine
		logger.Debug("Could not extract metadata", "error", err.Error())
	}

	logger.Debug("Audio validation successful", "format", format, "size_mb", sizeMB)
	return metadata, nil
}

func (av *AudioValidator) extractMetadata(filePath string, metadata *AudioMetadata) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	m, err := tag.ReadFrom(file)
	if err != nil {
		return err
	}

	metadata.Title = m.Title()
	metadata.Artist = m.Artist()
	metadata.Album = m.Album()
	return nil
}

// GetSizeReport returns a human-readable file size
func (m *AudioMetadata) GetSizeReport() string {
	return fmt.Sprintf("%.1f MB", float64(m.FileSize)/(1024*1024))
}

// DisplayMetadata prints the extracted metadata
func (m *AudioMetadata) DisplayMetadata() {
	fmt.Printf("Audio: %s, %s\n", strings.ToUpper(m.Format), m.GetSizeReport())
	if m.Title != "" {
		fmt.Printf("  Title:  %s\n", m.Title)
	}
	if m.Artist != "" {
		fmt.Printf("  Artist: %s\n", m.Artist)
	}
	if m.Album != "" {
		fmt.Printf("  Album:  %s\n", m.Album)
	}
}
