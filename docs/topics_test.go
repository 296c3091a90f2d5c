package docs

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/cryptfolio"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
	if slices.Contains(all, index) {
		t.Errorf("GetAllTopics() = %v, want the table of contents excluded", all)
	}
}

func TestGetTopics(t *testing.T) {
	got, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error = %v", err)
	}
	all, _ := GetAllTopics()
	for _, topic := range all {
		content, _ := GetTopic(topic)
		if !strings.Contains(got, content) {
			t.Errorf("GetTopics(*) is missing topic %q", topic)
		}
	}

	if _, err := GetTopics("readme", "nope"); err == nil {
		t.Errorf("GetTopics(readme, nope) error = nil, want an error")
	}
}

// Block is a fenced code block in a markdown file.
type Block struct {
	Lang    string
	Content []byte
	File    string
	Line    int
}

// parseMarkdown returns the fenced code blocks of file.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		var body bytes.Buffer
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			body.Write(line.Value(content))
		}
		b := &Block{Content: body.Bytes(), File: file}
		if fcb.Info != nil {
			b.Lang = string(fcb.Info.Segment.Value(content))
			b.Line = bytes.Count(content[:fcb.Info.Segment.Start], []byte("\n")) + 1
		}
		blocks = append(blocks, b)
		return ast.WalkContinue, nil
	})
	return blocks
}

// TestJSONExamples checks that the JSON examples of the manual are accepted as documented.
func TestJSONExamples(t *testing.T) {
	decoders := map[string]func([]byte) error{
		"portfolio.md": func(b []byte) error {
			_, err := cryptfolio.DecodeHoldings(bytes.NewReader(b))
			return err
		},
		"serve.md": func(b []byte) error {
			var c cryptfolio.Cycle
			return json.Unmarshal(b, &c)
		},
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		for _, b := range parseMarkdown(t, file) {
			if b.Lang != "json" {
				continue
			}
			decode, ok := decoders[file]
			if !ok {
				t.Errorf("%s:%d: no decoder for the JSON example", b.File, b.Line)
				continue
			}
			if err := decode(b.Content); err != nil {
				t.Errorf("%s:%d: invalid example: %v", b.File, b.Line, err)
			}
		}
	}
}

func TestPortfolioExample(t *testing.T) {
	for _, b := range parseMarkdown(t, "portfolio.md") {
		if b.Lang != "json" {
			continue
		}
		holdings, err := cryptfolio.DecodeHoldings(bytes.NewReader(b.Content))
		if err != nil {
			t.Fatalf("DecodeHoldings() error = %v", err)
		}
		var got []string
		for _, h := range holdings {
			got = append(got, h.Symbol+"="+h.Amount.String())
		}
		if want := "BTC=0.5,ETH=10,XRP=1000"; strings.Join(got, ",") != want {
			t.Errorf("portfolio example = %v, want %s", got, want)
		}
	}
}
