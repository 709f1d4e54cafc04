package search

import (
	"bytes"
	"context"
	"fmt"

	es "github.com/elastic/go-elasticsearch/v8"
)

const (
	IdxScholarships = "scholarships_v1"
	IdxStudents     = "students_v1"
)

func EnsureIndexes(ctx context.Context, c *es.Client) error {
	mapping := `{"settings":{"number_of_shards":1},"mappings":{"dynamic":"strict","properties":{
		"student_id":{"type":"keyword"},"name":{"type":"text"},"provider":{"type":"text"},
		"amount":{"type":"double"},"deadline":{"type":"date"},"eligibility":{"type":"text"},
		"match_score":{"type":"double"},"status":{"type":"keyword"},"updated_at":{"type":"date"}
	}}}`
	if err := ensure(ctx, c, IdxScholarships, mapping); err != nil {
		return err
	}

	mapping = `{"settings":{"number_of_shards":1},"mappings":{"dynamic":"strict","properties":{
		"first_name":{"type":"keyword"},"last_name":{"type":"keyword"},"email":{"type":"keyword"},
		"gpa":{"type":"double"},"sat_score":{"type":"integer"},"act_score":{"type":"integer"},
		"extracurriculars":{"type":"keyword"},"status":{"type":"keyword"},"updated_at":{"type":"date"}
	}}}`
	return ensure(ctx, c, IdxStudents, mapping)
}

func ensure(ctx context.Context, c *es.Client, index, body string) error {
	exists, _ := c.Indices.Exists([]string{index})
	if exists != nil && exists.StatusCode == 200 {
		return nil
	}
	_, err := c.Indices.Create(index, c.Indices.Create.WithBody(bytes.NewBufferString(body)), c.Indices.Create.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("create index %s: %w", index, err)
	}
	return nil
}
