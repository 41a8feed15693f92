package cli

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	builtindocs "github.com/lattice-dev/lattice/docs"
	"github.com/lattice-dev/lattice/internal/ui"
)

const docsTopicsDir = "topics"

var (
	docsDisplayContext = ui.NewDisplayContext
	docsMarkdownRender = ui.RenderMarkdown
)

type docsTopicView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse bundled documentation",
	Long: `Browse long-form documentation bundled into the lattice binary.

Without arguments, lists the available topics. With a topic, renders it
in the terminal.

Examples:
  lattice docs
  lattice docs generators
  lattice docs routes`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listDocsTopics()
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild lattice so bundled docs are available")
		}

		if len(args) == 0 {
			return outputDocsTopics(topics)
		}

		topic, ok := findDocsTopic(topics, args[0])
		if !ok {
			available := make([]string, 0, len(topics))
			for _, t := range topics {
				available = append(available, t.ID)
			}
			return handleErrorMsg(ErrDocNotFound,
				fmt.Sprintf("unknown docs topic: %s", args[0]),
				fmt.Sprintf("Run 'lattice docs' to list topics (available: %s)", strings.Join(available, ", ")))
		}

		return outputDocsTopicContent(topic)
	},
}

func outputDocsTopics(topics []docsTopicView) error {
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{"topics": topics}, &Meta{Count: len(topics)})
		return nil
	}

	fmt.Println("Documentation topics:")
	for _, t := range topics {
		fmt.Printf("  %-32s %s\n", "lattice docs "+t.ID, t.Title)
	}
	return nil
}

func outputDocsTopicContent(topic docsTopicView) error {
	content, err := fs.ReadFile(builtindocs.FS, docsTopicPath(topic.ID))
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"topic":   topic.ID,
			"title":   topic.Title,
			"content": string(content),
		}, nil)
		return nil
	}

	renderedContent := string(content)
	display := docsDisplayContext()
	if display.IsTTY {
		if rendered, renderErr := docsMarkdownRender(string(content), display.TermWidth); renderErr == nil {
			renderedContent = rendered
		}
	}

	fmt.Print(renderedContent)
	if !strings.HasSuffix(renderedContent, "\n") {
		fmt.Println()
	}
	return nil
}

func listDocsTopics() ([]docsTopicView, error) {
	entries, err := fs.ReadDir(builtindocs.FS, docsTopicsDir)
	if err != nil {
		return nil, fmt.Errorf("read bundled docs: %w", err)
	}

	topics := make([]docsTopicView, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		id := strings.TrimSuffix(name, ".md")

		content, err := fs.ReadFile(builtindocs.FS, docsTopicPath(id))
		if err != nil {
			return nil, fmt.Errorf("read docs topic %s: %w", id, err)
		}
		topics = append(topics, docsTopicView{
			ID:    id,
			Title: extractDocsTitle(content, id),
		})
	}

	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })
	return topics, nil
}

func docsTopicPath(id string) string {
	return docsTopicsDir + "/" + id + ".md"
}

func findDocsTopic(topics []docsTopicView, raw string) (docsTopicView, bool) {
	needle := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(raw, ".md")))
	for _, t := range topics {
		if t.ID == needle {
			return t, true
		}
	}
	return docsTopicView{}, false
}

// extractDocsTitle returns the text of the first level-1 heading, falling
// back to a title derived from the topic's file name.
func extractDocsTitle(content []byte, fallbackSlug string) string {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))

	title := ""
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 1 {
			return ast.WalkContinue, nil
		}

		var textBuilder strings.Builder
		for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
			if textNode, ok := child.(*ast.Text); ok {
				textBuilder.Write(textNode.Segment.Value(content))
			}
		}
		if t := strings.TrimSpace(textBuilder.String()); t != "" {
			title = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	if title == "" {
		return titleFromSlug(fallbackSlug)
	}
	return title
}

func titleFromSlug(slug string) string {
	parts := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(parts) == 0 {
		return slug
	}
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
