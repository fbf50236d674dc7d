package client

import (
	"testing"
)

// TestGetClientInitialization validates client initialization
func TestGetClientInitialization(t *testing.T) {
	// Reset client for testing
	httpClient = nil

	client := GetClient()

	if client == nil {
		t.Fatal("GetClient should not return nil")
	}
}

// TestGetClientSingleton validates that GetClient returns same instance
func TestGetClientSingleton(t *testing.T) {
	httpClient = nil

	client1 := GetClient()
	client2 := GetClient()

	if client1 != client2 {
		t.Error("GetClient should return same instance")
	}
}

// TestClientInitializesWithDefaults validates client gets default values
func TestClientInitializesWithDefaults(t *testing.T) {
	httpClient = nil

	client := GetClient()

	if client == nil {
		t.Fatal("Client should initialize with defaults")
	}

	headers := client.Header
	if agent, ok := headers["User-Agent"]; ok {
		if len(agent) == 0 || agent[0] != "Soundreel-CLI/0.1.0" {
			t.Error("User-Agent should be set to Soundreel-CLI/0.1.0")
		}
	}
}

// TestInitSetsBaseURL validates the base URL comes from config
func TestInitSetsBaseURL(t *testing.T) {
	httpClient = nil

	client := GetClient()

	if client.BaseURL == "" {
		t.Error("Base URL should be configured from server host/port settings")
	}
}

// TestGetClientIdempotent validates multiple GetClient calls are safe
func TestGetClientIdempotent(t *testing.T) {
	httpClient = nil

	for i := 0; i < 5; i++ {
		_ = GetClient()
	}
}
