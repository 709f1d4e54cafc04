package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/Akr1040317/CollegeApp-sub000/internal/ai"
	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
	"github.com/Akr1040317/CollegeApp-sub000/internal/store"
)

type EssayFeedback struct {
	OverallScore int      `json:"overall_score"` // 1-10
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Comments     string   `json:"comments"`
}

func (f *EssayFeedback) validate() error {
	if f.OverallScore < 1 || f.OverallScore > 10 {
		return fmt.Errorf("overall score %d outside 1-10", f.OverallScore)
	}
	if len(f.Strengths) == 0 && len(f.Improvements) == 0 && f.Comments == "" {
		return fmt.Errorf("feedback contains no strengths, improvements, or comments")
	}
	return nil
}

const essayFeedbackSchema = `{
  "overall_score": "number, 1-10",
  "strengths": ["string"],
  "improvements": ["string"],
  "comments": "string, overall narrative feedback"
}`

func buildEssayPrompt(e *models.Essay) string {
	return fmt.Sprintf(`Review this college application essay as an admissions reader.

Essay prompt:
%s

Essay draft (%d words):
%s

Score it, list concrete strengths and improvements, and give narrative feedback.`,
		e.Prompt, e.WordCount, e.Content)
}

// AnalyzeEssay requests feedback on the essay and stores the validated
// result on the record.
func (a *Advisor) AnalyzeEssay(ctx context.Context, e *models.Essay) (*EssayFeedback, error) {
	raw, err := a.AI.Invoke(ctx, ai.InvokeRequest{
		Prompt:         buildEssayPrompt(e),
		ResponseSchema: essayFeedbackSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("essay analysis call failed: %w", err)
	}

	var fb EssayFeedback
	if err := json.Unmarshal(raw, &fb); err != nil {
		return nil, fmt.Errorf("essay feedback is not valid JSON: %w", err)
	}
	if err := fb.validate(); err != nil {
		return nil, fmt.Errorf("essay feedback failed validation: %w", err)
	}

	stored, err := json.Marshal(fb)
	if err != nil {
		return nil, err
	}
	if err := a.Store.Update(ctx, store.Essays, e.ID, map[string]any{
		"feedback": datatypes.JSON(stored),
	}); err != nil {
		return nil, fmt.Errorf("storing essay feedback: %w", err)
	}
	e.Feedback = datatypes.JSON(stored)

	return &fb, nil
}
