package categorizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModelName is the Gemini model used for remote classification.
const DefaultModelName = "gemini-2.0-flash"

// GeminiLabeler classifies description batches with the Gemini API.
// It expects the model to return a STRICT JSON array of category
// labels, same length and order as the input.
type GeminiLabeler struct {
	client     *genai.Client
	model      string
	categories []string
}

// NewGeminiLabeler creates a labeler restricted to the given category
// names. It reads API credentials from the environment the way the
// genai SDK does.
func NewGeminiLabeler(ctx context.Context, model string, categories []string) (*GeminiLabeler, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model == "" {
		model = DefaultModelName
	}
	return &GeminiLabeler{client: client, model: model, categories: categories}, nil
}

// Label implements BatchLabeler.
func (g *GeminiLabeler) Label(ctx context.Context, descriptions []string) ([]string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: g.buildPrompt(descriptions)},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var labels []string
	if err := json.Unmarshal([]byte(cleanModelJSON(rawText)), &labels); err != nil {
		return nil, fmt.Errorf("unmarshal labels: %w", err)
	}
	return labels, nil
}

func (g *GeminiLabeler) buildPrompt(descriptions []string) string {
	var b strings.Builder
	b.WriteString("You are a bank transaction categorizer.\n\n")
	b.WriteString("Task:\n")
	b.WriteString("- Assign exactly one category to each transaction description below.\n")
	b.WriteString("- Output STRICT JSON only (no comments, no extra text).\n")
	b.WriteString("- Output a JSON array of strings, one category per description, same order.\n")
	b.WriteString("- The array must have exactly ")
	fmt.Fprintf(&b, "%d elements.\n\n", len(descriptions))

	b.WriteString("Allowed categories:\n")
	for _, c := range g.categories {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	fmt.Fprintf(&b, "\nIf unsure, use %q.\n\n", FallbackCategory)

	b.WriteString("Descriptions:\n")
	for i, d := range descriptions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, d)
	}

	b.WriteString("\nReturn ONLY valid raw JSON.\n")
	b.WriteString("Do NOT wrap the response in code fences.\n")
	b.WriteString("Output must begin with \"[\" and end with \"]\".\n")
	return b.String()
}

// cleanModelJSON strips Markdown fences and surrounding junk when the
// model ignores the raw-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
