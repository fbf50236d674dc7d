package api

import (
	"encoding/json"
	"time"
)

// OutLink is an outbound link attached to a post (e.g. Spotify, SoundCloud)
type OutLink struct {
	Source string `json:"source"`
	URL    string `json:"url"`
}

// User is the profile projection returned by /api/user/{id}.
// The *Url fields carry opaque file identifiers despite the name; they are
// resolved to fetchable URLs client-side.
type User struct {
	ID                 string   `json:"_id"`
	UserName           string   `json:"userName"`
	ProfileName        string   `json:"profileName"`
	ProfileDescription string   `json:"profileDescription"`
	FollowerCount      int      `json:"followerCount"`
	Following          []string `json:"following"`
	TotalLikeCount     int      `json:"totalLikeCount"`
	Genres             []string `json:"genres"`
	OwnedPosts         []string `json:"ownedPosts"`
	AvatarRef          string   `json:"userAvatarUrl"`
}

// Post is a single feed entry: optional audio, optional album art,
// caption and outbound links
type Post struct {
	ID            string    `json:"_id"`
	OwnerUser     string    `json:"ownerUser"`
	LikesCount    int       `json:"likesCount"`
	Timestamp     time.Time `json:"timestamp"`
	AlbumCoverRef string    `json:"albumCoverUrl,omitempty"`
	AudioRef      string    `json:"audioUrl,omitempty"`
	Caption       string    `json:"caption,omitempty"`
	OutLinks      string    `json:"outLinks,omitempty"`
}

// ParsedOutLinks decodes the JSON-encoded outLinks field. The backend
// stores the links as a JSON string inside the post document; a malformed
// or empty value yields no links rather than an error.
func (p Post) ParsedOutLinks() []OutLink {
	if p.OutLinks == "" {
		return nil
	}
	var links []OutLink
	if err := json.Unmarshal([]byte(p.OutLinks), &links); err != nil {
		return nil
	}
	return links
}

// FeedResponse is the envelope returned by /api/feed/get_feed/{userId}
type FeedResponse struct {
	Feed []Post `json:"feed"`
}

// Auth request/response types
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	UserName    string `json:"userName"`
	ProfileName string `json:"profileName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName,omitempty"`
	Email    string `json:"email,omitempty"`
}

// GenrePalette is the fixed set of selectable genre tags
var GenrePalette = []string{
	"Pop",
	"Rock",
	"R&B",
	"Hip-hop",
	"EDM",
	"Classical",
	"Jazz",
	"Country",
	"Blues",
	"Reggae",
	"Metal",
	"Folk",
	"Soul",
	"Techno",
	"Disco",
}

// IsKnownGenre reports whether g is in the fixed genre palette
func IsKnownGenre(g string) bool {
	for _, known := range GenrePalette {
		if known == g {
			return true
		}
	}
	return false
}
