package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
)

// SearchScholarships runs a full-text query over a student's
// scholarships: name, provider, and eligibility text, newest first when
// no query is given.
func SearchScholarships(ctx context.Context, c *es.Client, studentID uuid.UUID, query string, limit int) ([]ScholarshipDoc, error) {
	if limit <= 0 {
		limit = 50
	}

	must := []map[string]any{}
	if query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"name^2", "provider", "eligibility"},
			},
		})
	}
	body := map[string]any{
		"size": limit,
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
				"filter": []map[string]any{
					{"term": map[string]any{"student_id": studentID.String()}},
				},
			},
		},
	}
	if query == "" {
		body["sort"] = []map[string]any{{"updated_at": map[string]any{"order": "desc"}}}
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	res, err := c.Search(
		c.Search.WithContext(ctx),
		c.Search.WithIndex(IdxScholarships),
		c.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("scholarship search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("scholarship search returned %s", res.Status())
	}

	var envelope struct {
		Hits struct {
			Hits []struct {
				Source ScholarshipDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	docs := make([]ScholarshipDoc, 0, len(envelope.Hits.Hits))
	for _, h := range envelope.Hits.Hits {
		docs = append(docs, h.Source)
	}
	return docs, nil
}
