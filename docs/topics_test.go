package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation stays in sync:
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every .md file (except readme.md) is listed in readme.md.
	// 3. Every topic starts with a level-1 heading named after the topic.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	if len(topicsInReadme) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("failed to get topic %q: %v", topic, err)
			}
			assertLeadingHeading(t, topic, content)
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		name := strings.TrimSuffix(f, ".md")
		if name == "readme" {
			continue
		}
		if !slices.Contains(topicsInReadme, name) {
			t.Errorf("topic %q exists but is not listed in readme.md", name)
		}
	}
}

// assertLeadingHeading parses the topic as markdown and checks that its first
// heading is a level-1 heading with the topic name.
func assertLeadingHeading(t *testing.T, topic, content string) {
	t.Helper()
	source := []byte(content)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	heading := doc.FirstChild()
	h, ok := heading.(*ast.Heading)
	if !ok {
		t.Fatalf("topic %q does not start with a heading", topic)
	}
	if h.Level != 1 {
		t.Errorf("topic %q leading heading level = %d, want 1", topic, h.Level)
	}
	if got := string(h.Text(source)); got != topic {
		t.Errorf("topic %q leading heading = %q", topic, got)
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	if slices.Contains(topics, "readme") {
		t.Error("GetAllTopics() includes readme")
	}
	if !slices.IsSorted(topics) {
		t.Errorf("GetAllTopics() not sorted: %v", topics)
	}
}

func TestGetTopic_unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() accepted an unknown topic")
	}
}

func TestGetTopic_star(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) failed: %v", err)
	}
	topics, _ := GetAllTopics()
	for _, topic := range topics {
		content, _ := GetTopic(topic)
		if !strings.Contains(all, content) {
			t.Errorf("GetTopic(*) missing topic %q", topic)
		}
	}
}
