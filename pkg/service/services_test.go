package service

import (
	"testing"
)

func TestNewServices(t *testing.T) {
	if NewAuthService() == nil {
		t.Error("NewAuthService returned nil")
	}
	if NewPostService() == nil {
		t.Error("NewPostService returned nil")
	}
	if NewProfileService() == nil {
		t.Error("NewProfileService returned nil")
	}
	if NewSearchService() == nil {
		t.Error("NewSearchService returned nil")
	}
	if NewHealthService() == nil {
		t.Error("NewHealthService returned nil")
	}
	if NewFeedService("u1") == nil {
		t.Error("NewFeedService returned nil")
	}
}

func TestParseIntent(t *testing.T) {
	tests := []struct {
		input string
		op    string
		arg   float64
	}{
		{"n", "next", 0},
		{"next", "next", 0},
		{"p", "prev", 0},
		{"previous", "prev", 0},
		{"space", "toggle", 0},
		{"pause", "toggle", 0},
		{"PLAY", "toggle", 0},
		{"l", "like", 0},
		{"e", "expand", 0},
		{"c", "collapse", 0},
		{"s 12.5", "seek", 12.5},
		{"seek 30", "seek", 30},
		{"s", "help", 0},
		{"s abc", "help", 0},
		{"q", "quit", 0},
		{"exit", "quit", 0},
		{"", "help", 0},
		{"bogus", "help", 0},
	}

	for _, tt := range tests {
		got := parseIntent(tt.input)
		if got.op != tt.op || got.arg != tt.arg {
			t.Errorf("parseIntent(%q) = %+v, want op=%s arg=%v", tt.input, got, tt.op, tt.arg)
		}
	}
}
