package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const hintPromptTemplate = `You write clues for a %s crossword puzzle.

For each of the following answer words, write one short clue in the word's
own language. A clue must not contain the answer word or an inflection of it,
and should be at most ten words long.

Words: %s

Respond ONLY with a JSON object mapping each word, lowercased, to its clue,
without comments or markdown.`

func languageName(code string) string {
	switch code {
	case "fi":
		return "Finnish"
	case "no":
		return "Norwegian"
	}
	return "Finnish and Norwegian"
}

// SuggestHints asks Gemini for a clue per word and returns them keyed by
// lowercase word. Words the model skipped are simply absent from the result.
func (g *GeminiClient) SuggestHints(ctx context.Context, words []string, language string) (map[string]string, error) {
	if len(words) == 0 {
		return map[string]string{}, nil
	}

	prompt := fmt.Sprintf(hintPromptTemplate, languageName(language), strings.Join(words, ", "))
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.4)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	var raw map[string]string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parse hints JSON: %w\nraw response: %s", err, text)
	}

	hints := make(map[string]string, len(raw))
	for word, hint := range raw {
		word = strings.ToLower(strings.TrimSpace(word))
		hint = strings.TrimSpace(hint)
		if word != "" && hint != "" {
			hints[word] = hint
		}
	}
	return hints, nil
}
