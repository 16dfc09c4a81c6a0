package services

import (
	"testing"

	"ecocycle/models"
)

func TestTreeEquivalent(t *testing.T) {
	if got := TreeEquivalent(21.77); got != 1.0 {
		t.Errorf("Expected 21.77 kg to equal 1 tree-year, got %v", got)
	}
	if got := TreeEquivalent(0); got != 0 {
		t.Errorf("Expected 0 kg to equal 0 trees, got %v", got)
	}
	if got := TreeEquivalent(108.85); got != 5.0 {
		t.Errorf("Expected 108.85 kg to equal 5 tree-years, got %v", got)
	}
}

func TestLeaderboardEntryNameFallback(t *testing.T) {
	player := models.Player{
		UserID:      "u1",
		Email:       "maya@campus.edu",
		TotalPoints: 120,
		Level:       2,
	}

	entry := leaderboardEntry(player, 3)

	if entry.Name != "maya" {
		t.Errorf("Expected name fallback from email, got %q", entry.Name)
	}
	if entry.Rank != 3 {
		t.Errorf("Expected rank 3, got %d", entry.Rank)
	}
	if entry.AvatarURL == "" {
		t.Errorf("Expected generated avatar URL for empty avatar")
	}
}

func TestLeaderboardEntryKeepsDisplayName(t *testing.T) {
	player := models.Player{
		UserID:      "u2",
		Email:       "leo@campus.edu",
		DisplayName: "Leo Park",
		AvatarURL:   "https://cdn.example.com/leo.png",
	}

	entry := leaderboardEntry(player, 1)

	if entry.Name != "Leo Park" {
		t.Errorf("Expected display name kept, got %q", entry.Name)
	}
	if entry.AvatarURL != "https://cdn.example.com/leo.png" {
		t.Errorf("Expected avatar kept, got %q", entry.AvatarURL)
	}
}
