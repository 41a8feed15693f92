package cli

import (
	"strings"
	"testing"
)

func TestListDocsTopics(t *testing.T) {
	topics, err := listDocsTopics()
	if err != nil {
		t.Fatalf("listDocsTopics failed: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("expected bundled docs topics")
	}

	byID := make(map[string]docsTopicView)
	for _, topic := range topics {
		if topic.Title == "" {
			t.Errorf("topic %s has no title", topic.ID)
		}
		byID[topic.ID] = topic
	}

	gs, ok := byID["getting-started"]
	if !ok {
		t.Fatal("expected a getting-started topic")
	}
	if gs.Title != "Getting Started" {
		t.Errorf("getting-started title = %q", gs.Title)
	}
}

func TestFindDocsTopic(t *testing.T) {
	topics := []docsTopicView{
		{ID: "generators", Title: "Generators"},
		{ID: "routes", Title: "The Route Table"},
	}

	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"generators", "generators", true},
		{"  Routes ", "routes", true},
		{"routes.md", "routes", true},
		{"nope", "", false},
	}
	for _, tt := range tests {
		got, ok := findDocsTopic(topics, tt.input)
		if ok != tt.found {
			t.Errorf("findDocsTopic(%q) found = %v, want %v", tt.input, ok, tt.found)
			continue
		}
		if ok && got.ID != tt.want {
			t.Errorf("findDocsTopic(%q) = %s, want %s", tt.input, got.ID, tt.want)
		}
	}
}

func TestExtractDocsTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"simple heading", "# Generators\n\nbody\n", "Generators"},
		{"heading after text", "intro\n\n# Real Title\n", "Real Title"},
		{"skips lower levels", "## Sub\n\n# Top\n", "Top"},
		{"no heading falls back", "just text\n", "My Topic"},
		{"empty content falls back", "", "My Topic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractDocsTitle([]byte(tt.content), "my-topic")
			if got != tt.want {
				t.Errorf("extractDocsTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitleFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"getting-started", "Getting Started"},
		{"routes", "Routes"},
		{"a_b-c", "A B C"},
	}
	for _, tt := range tests {
		if got := titleFromSlug(tt.slug); got != tt.want {
			t.Errorf("titleFromSlug(%q) = %q, want %q", tt.slug, got, tt.want)
		}
	}
}

func TestDocsUnknownTopic(t *testing.T) {
	err := runCLI(t, "", "docs", "no-such-topic")
	if err == nil {
		t.Fatal("expected unknown topic to fail")
	}
	if !strings.Contains(err.Error(), "unknown docs topic") {
		t.Errorf("unexpected error: %v", err)
	}
}
