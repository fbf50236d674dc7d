// Package credentials persists the signed-in user's identity between
// command invocations. The backend identifies callers by user id only;
// there are no tokens to refresh or expire.
package credentials

import (
	"encoding/json"
	"os"
	"time"

	"github.com/soundreel/cli/pkg/config"
)

type Credentials struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Load loads credentials from disk; (nil, nil) when not signed in
func Load() (*Credentials, error) {
	path := config.GetCredentialsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

// Save saves credentials to disk
func Save(creds *Credentials) error {
	path := config.GetCredentialsPath()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	// owner read/write only
	return os.WriteFile(path, data, 0600)
}

// Delete removes the credentials file
func Delete() error {
	return os.Remove(config.GetCredentialsPath())
}

// IsValid reports whether a signed-in user id is present
func (c *Credentials) IsValid() bool {
	return c != nil && c.UserID != ""
}
