package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test keeps the documentation in sync with itself:
	// 1. Every topic listed in readme.md loads through GetTopic.
	// 2. Every .md file (readme.md excluded) is listed in readme.md.

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
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	for _, topic := range all {
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopicStar(t *testing.T) {
	content, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) failed: %v", err)
	}
	for _, topic := range []string{"tvm", "annuities", "goals", "risk", "hedging"} {
		single, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) failed: %v", topic, err)
		}
		if !strings.Contains(content, single) {
			t.Errorf("GetTopic(*) is missing topic %q", topic)
		}
	}

	if _, err := GetTopic("nonexistent"); err == nil {
		t.Error("GetTopic(nonexistent) succeeded, want error")
	}
}

func TestTopicStructure(t *testing.T) {
	// Every topic must be valid markdown opening with a single level-1 heading.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			h1 := 0
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
					h1++
				}
				return ast.WalkContinue, nil
			})
			if h1 != 1 {
				t.Errorf("%s has %d level-1 headings, want 1", file, h1)
			}

			first := root.FirstChild()
			if h, ok := first.(*ast.Heading); !ok || h.Level != 1 {
				t.Errorf("%s does not open with a level-1 heading", file)
			}
		})
	}
}
