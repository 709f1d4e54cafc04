package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akr1040317/CollegeApp-sub000/internal/ai"
	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

type stubAI struct {
	response string
	err      error
	lastReq  ai.InvokeRequest
}

func (s *stubAI) Invoke(_ context.Context, req ai.InvokeRequest) (json.RawMessage, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.response), nil
}

type stubStore struct {
	updates     map[string]map[string]any
	bulkCreated any
	fail        error
}

func (s *stubStore) Update(_ context.Context, col string, _ uuid.UUID, fields map[string]any) error {
	if s.fail != nil {
		return s.fail
	}
	if s.updates == nil {
		s.updates = map[string]map[string]any{}
	}
	s.updates[col] = fields
	return nil
}

func (s *stubStore) BulkCreate(_ context.Context, _ string, recs any) error {
	if s.fail != nil {
		return s.fail
	}
	s.bulkCreated = recs
	return nil
}

func testProfile() *models.StudentProfile {
	gpa := 3.75
	sat := 1450
	ecs, _ := json.Marshal([]string{"Robotics Club"})
	return &models.StudentProfile{
		ID:        uuid.New(),
		FirstName: "Demo", LastName: "Student",
		GPA: &gpa, GPAScale: 4.0, SATScore: &sat,
		Extracurriculars: ecs,
		SafetyPercent:    30, TargetPercent: 50, ReachPercent: 20,
	}
}

func TestProfileSummary(t *testing.T) {
	s := profileSummary(testProfile())
	assert.Contains(t, s, "GPA: 3.75 / 4.0")
	assert.Contains(t, s, "SAT composite: 1450")
	assert.Contains(t, s, "Extracurriculars: Robotics Club")
	assert.Contains(t, s, "School mix: 30% safety, 50% target, 20% reach")
}

func TestGenerateRecommendations(t *testing.T) {
	client := &stubAI{response: `{"recommendations":[
		{"name":"State University","location":"Columbus, OH","category":"safety","match_score":91,"reasoning":"strong fit"},
		{"name":"Tech Institute","location":"Boston, MA","category":"reach","match_score":62,"reasoning":"stretch"}
	]}`}
	st := &stubStore{}
	a := New(client, st)
	p := testProfile()

	recs, err := a.GenerateRecommendations(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "State University", recs[0].Name)

	// prompt embeds the profile and the mix
	assert.Contains(t, client.lastReq.Prompt, "30% safety")
	assert.Contains(t, client.lastReq.ResponseSchema, "match_score")

	// result cached onto the profile record
	require.Contains(t, st.updates, "students")
	assert.NotEmpty(t, p.CollegeRecommendations)
}

func TestGenerateRecommendationsFailsClosed(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantErr  string
	}{
		{"not json", `recommendations: none`, "not valid JSON"},
		{"empty list", `{"recommendations":[]}`, "no recommendations"},
		{"missing name", `{"recommendations":[{"category":"target","match_score":50}]}`, "missing a name"},
		{"bad category", `{"recommendations":[{"name":"X","category":"likely","match_score":50}]}`, "invalid category"},
		{"score out of range", `{"recommendations":[{"name":"X","category":"target","match_score":140}]}`, "outside 0-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &stubStore{}
			a := New(&stubAI{response: tt.response}, st)

			_, err := a.GenerateRecommendations(context.Background(), testProfile())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, st.updates, "invalid responses must not be persisted")
		})
	}
}

func TestGenerateRecommendationsSurfacesCallError(t *testing.T) {
	a := New(&stubAI{err: errors.New("upstream timeout")}, &stubStore{})
	_, err := a.GenerateRecommendations(context.Background(), testProfile())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream timeout")
}

func TestAnalyzeEssay(t *testing.T) {
	client := &stubAI{response: `{"overall_score":7,"strengths":["clear voice"],"improvements":["tighten intro"],"comments":"solid draft"}`}
	st := &stubStore{}
	a := New(client, st)
	e := &models.Essay{ID: uuid.New(), Title: "Why Us", Prompt: "Why this college?", Content: "Because...", WordCount: 120}

	fb, err := a.AnalyzeEssay(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, 7, fb.OverallScore)
	assert.Contains(t, client.lastReq.Prompt, "Why this college?")
	require.Contains(t, st.updates, "essays")
	assert.NotEmpty(t, e.Feedback)
}

func TestAnalyzeEssayFailsClosed(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"score out of range", `{"overall_score":0,"comments":"x"}`},
		{"empty feedback", `{"overall_score":5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &stubStore{}
			a := New(&stubAI{response: tt.response}, st)
			_, err := a.AnalyzeEssay(context.Background(), &models.Essay{ID: uuid.New()})
			require.Error(t, err)
			assert.Empty(t, st.updates)
		})
	}
}

func TestDiscoverScholarships(t *testing.T) {
	client := &stubAI{response: `{"scholarships":[
		{"name":"STEM Futures Grant","provider":"National STEM Fund","amount":5000,"deadline":"2026-12-01","eligibility":"3.5+ GPA","match_score":88}
	]}`}
	st := &stubStore{}
	a := New(client, st)
	p := testProfile()

	recs, err := a.DiscoverScholarships(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "STEM Futures Grant", recs[0].Name)
	assert.Equal(t, models.ScholarshipDiscovered, recs[0].Status)
	assert.Equal(t, p.ID, recs[0].StudentID)
	require.NotNil(t, recs[0].Deadline)
	assert.Equal(t, "2026-12-01", recs[0].Deadline.Format("2006-01-02"))
	assert.NotNil(t, st.bulkCreated)
}

func TestDiscoverScholarshipsRejectsBadDeadline(t *testing.T) {
	a := New(&stubAI{response: `{"scholarships":[{"name":"X","deadline":"soon","match_score":10}]}`}, &stubStore{})
	_, err := a.DiscoverScholarships(context.Background(), testProfile())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparseable deadline")
}
