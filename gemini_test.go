package main

import (
	"context"
	"os"
	"testing"
)

// Integration test against the live Vertex AI API. Runs only when
// GCP_PROJECT_ID is set.
func TestSuggestHints(t *testing.T) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		t.Skip("GCP_PROJECT_ID not set, skipping Gemini integration test")
	}

	ctx := context.Background()
	client, err := NewGeminiClient(ctx, projectID, os.Getenv("GCP_REGION"))
	if err != nil {
		t.Fatalf("NewGeminiClient: %v", err)
	}
	defer client.Close()

	hints, err := client.SuggestHints(ctx, []string{"KISSA", "TALO"}, "fi")
	if err != nil {
		t.Fatalf("SuggestHints: %v", err)
	}
	for _, word := range []string{"kissa", "talo"} {
		if hints[word] == "" {
			t.Errorf("no hint returned for %s, got %v", word, hints)
		}
	}
}
