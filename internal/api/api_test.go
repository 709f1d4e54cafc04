package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
	"github.com/Akr1040317/CollegeApp-sub000/internal/store"
)

func TestFilterFieldsDropsProtectedKeys(t *testing.T) {
	raw := map[string]any{
		"college_name": "Rice",
		"student_id":   "someone-else",
		"id":           "forged",
		"created_at":   "2020-01-01",
		"notes":        "visit in October",
	}
	got := filterFields(raw, trackerFields)
	assert.Equal(t, map[string]any{"college_name": "Rice", "notes": "visit in October"}, got)
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, countWords(""))
	assert.Equal(t, 0, countWords("   \n\t"))
	assert.Equal(t, 5, countWords("my essay about five words"))
	assert.Equal(t, 2, countWords("  spaced   out  "))
}

func TestToTaskViewDerivesDisplayFields(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	v := toTaskView(models.Task{
		Title:   "Submit FAFSA",
		StartAt: now.Add(-48 * time.Hour),
		Status:  models.TaskInProgress,
	}, now)

	assert.Equal(t, models.TaskOverdue, v.EffectiveStatus)
	assert.Equal(t, "2 days overdue", v.RelativeDate)
	// the stored status is untouched
	assert.Equal(t, models.TaskInProgress, v.Status)
}

func TestCollectionModel(t *testing.T) {
	assert.IsType(t, &models.ApplicationTracker{}, collectionModel(store.Trackers))
	assert.IsType(t, &models.Essay{}, collectionModel(store.Essays))
	assert.IsType(t, &models.Task{}, collectionModel(store.Tasks))
	assert.IsType(t, &models.Scholarship{}, collectionModel(store.Scholarships))
	assert.IsType(t, &models.SelectedCollege{}, collectionModel(store.SelectedColleges))
	assert.Nil(t, collectionModel("users"))
}

// Whitelisted keys go straight into gorm's map Updates, which treats
// unknown keys as raw column assignments. Every key must therefore be a
// real database column, or the whole update fails at runtime.
func TestUpdateWhitelistsMatchModelColumns(t *testing.T) {
	cases := []struct {
		name   string
		model  any
		fields map[string]bool
	}{
		{"trackers", &models.ApplicationTracker{}, trackerFields},
		{"essays", &models.Essay{}, essayFields},
		{"tasks", &models.Task{}, taskFields},
		{"scholarships", &models.Scholarship{}, scholarshipFields},
		{"colleges", &models.SelectedCollege{}, collegeFields},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sch, err := schema.Parse(tc.model, &sync.Map{}, schema.NamingStrategy{})
			require.NoError(t, err)
			for field := range tc.fields {
				assert.Contains(t, sch.FieldsByDBName, field, "whitelist key %q is not a %s column", field, sch.Table)
			}
		})
	}

	// the essay handler injects these derived keys on content changes
	sch, err := schema.Parse(&models.Essay{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Contains(t, sch.FieldsByDBName, "word_count")
	assert.Contains(t, sch.FieldsByDBName, "char_count")
}

func TestWriteStoreErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"unknown collection", store.ErrUnknownCollection, http.StatusBadRequest},
		{"no session", errNoSession, http.StatusUnauthorized},
		{"anything else", assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeStoreError(rec, tc.err)
			assert.Equal(t, tc.want, rec.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}
