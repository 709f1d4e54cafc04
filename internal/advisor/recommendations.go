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

type CollegeRecommendation struct {
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	Category   string  `json:"category"` // safety | target | reach
	MatchScore float64 `json:"match_score"`
	Reasoning  string  `json:"reasoning"`
}

type recommendationResponse struct {
	Recommendations []CollegeRecommendation `json:"recommendations"`
}

func (r *recommendationResponse) validate() error {
	if len(r.Recommendations) == 0 {
		return fmt.Errorf("response contains no recommendations")
	}
	for i, rec := range r.Recommendations {
		if rec.Name == "" {
			return fmt.Errorf("recommendation %d is missing a name", i)
		}
		if _, ok := models.ValidCollegeCategory[models.CollegeCategory(rec.Category)]; !ok {
			return fmt.Errorf("recommendation %q has invalid category %q", rec.Name, rec.Category)
		}
		if rec.MatchScore < 0 || rec.MatchScore > 100 {
			return fmt.Errorf("recommendation %q has match score %v outside 0-100", rec.Name, rec.MatchScore)
		}
	}
	return nil
}

const recommendationSchema = `{
  "recommendations": [
    {
      "name": "string, college name",
      "location": "string, city and state",
      "category": "string, one of: safety, target, reach",
      "match_score": "number, 0-100",
      "reasoning": "string, why this college fits the student"
    }
  ]
}`

func buildRecommendationPrompt(p *models.StudentProfile) string {
	return fmt.Sprintf(`Recommend 10 US colleges for this applicant.

%s
Distribute the recommendations to follow the school mix percentages above: the share of safety, target, and reach schools should match them as closely as possible. Respect the stated location, cost, and campus preferences.`, profileSummary(p))
}

// GenerateRecommendations asks the model for a college list, validates
// it, and caches it on the profile record.
func (a *Advisor) GenerateRecommendations(ctx context.Context, p *models.StudentProfile) ([]CollegeRecommendation, error) {
	raw, err := a.AI.Invoke(ctx, ai.InvokeRequest{
		Prompt:         buildRecommendationPrompt(p),
		ResponseSchema: recommendationSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("recommendation call failed: %w", err)
	}

	var resp recommendationResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("recommendation response is not valid JSON: %w", err)
	}
	if err := resp.validate(); err != nil {
		return nil, fmt.Errorf("recommendation response failed validation: %w", err)
	}

	cached, err := json.Marshal(resp.Recommendations)
	if err != nil {
		return nil, err
	}
	if err := a.Store.Update(ctx, store.Students, p.ID, map[string]any{
		"college_recommendations": datatypes.JSON(cached),
	}); err != nil {
		return nil, fmt.Errorf("caching recommendations: %w", err)
	}
	p.CollegeRecommendations = datatypes.JSON(cached)

	return resp.Recommendations, nil
}
