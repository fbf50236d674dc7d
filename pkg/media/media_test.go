package media

import (
	"testing"
)

func TestResolveComposesURL(t *testing.T) {
	r := NewResolver("http://localhost:3000")

	tests := []struct {
		name   string
		kind   Kind
		fileID string
		want   string
	}{
		{"avatar", KindAvatar, "abc123", "http://localhost:3000/api/files/userAvatar/abc123"},
		{"album cover", KindAlbumCover, "cover-9", "http://localhost:3000/api/files/albumCover/cover-9"},
		{"audio", KindAudio, "track.mp3", "http://localhost:3000/api/files/audio/track.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.kind, tt.fileID)
			if !ok {
				t.Fatalf("Resolve(%s, %s) should produce a URL", tt.kind, tt.fileID)
			}
			if got != tt.want {
				t.Errorf("Resolve(%s, %s) = %s, want %s", tt.kind, tt.fileID, got, tt.want)
			}
		})
	}
}

func TestResolveEmptyIdentifier(t *testing.T) {
	r := NewResolver("http://localhost:3000")

	for _, kind := range []Kind{KindAvatar, KindAlbumCover, KindAudio} {
		url, ok := r.Resolve(kind, "")
		if ok {
			t.Errorf("Resolve(%s, \"\") should yield no URL, got %s", kind, url)
		}
		if url != "" {
			t.Errorf("Resolve(%s, \"\") should return empty string, got %s", kind, url)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := NewResolver("http://feed.example.com:8080")

	first, _ := r.Resolve(KindAudio, "same-id")
	for i := 0; i < 10; i++ {
		got, _ := r.Resolve(KindAudio, "same-id")
		if got != first {
			t.Fatalf("Resolve should be deterministic, got %s then %s", first, got)
		}
	}
}

func TestResolverOrigin(t *testing.T) {
	r := NewResolver("http://localhost:9999")
	if r.Origin() != "http://localhost:9999" {
		t.Errorf("Origin() = %s", r.Origin())
	}
}
