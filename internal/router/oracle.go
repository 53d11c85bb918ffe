package router

import (
	"context"
	"fmt"
	"strings"

	"seo-management-agent/pkg/gemini"
	pkgLog "seo-management-agent/pkg/log"
)

// geminiOracle is the Gemini-backed classification oracle. It makes one
// blocking round trip per call; failures are the caller's problem.
type geminiOracle struct {
	llm gemini.IGemini
	l   pkgLog.Logger
}

var _ Oracle = (*geminiOracle)(nil)

// NewGeminiOracle creates the LLM classification oracle.
func NewGeminiOracle(llm gemini.IGemini, l pkgLog.Logger) *geminiOracle {
	return &geminiOracle{
		llm: llm,
		l:   l,
	}
}

// Classify asks the model to pick one candidate label for the message.
func (o *geminiOracle) Classify(ctx context.Context, message string, candidates []string) (string, error) {
	system := fmt.Sprintf(PromptClassifySystem, strings.Join(candidates, ", "))

	resp, err := o.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: system}},
		},
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: message}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     OracleTemperature,
			MaxOutputTokens: OracleMaxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%s: LLM call failed: %w", LogPrefixClassify, err)
	}

	label := resp.Text()
	o.l.Infof(ctx, "%s: model %s answered %q", LogPrefixClassify, o.llm.Model(), label)
	return label, nil
}
