package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

type fakeSaver struct {
	saves int
	fail  error
}

func (f *fakeSaver) SaveProfile(_ context.Context, _ *models.StudentProfile) error {
	f.saves++
	return f.fail
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestValidateGuards(t *testing.T) {
	tests := []struct {
		name    string
		step    Step
		profile models.StudentProfile
		wantErr string
	}{
		{
			name:    "step 1 missing name",
			step:    StepPersonalInfo,
			profile: models.StudentProfile{Email: "a@b.com"},
			wantErr: "first and last name are required",
		},
		{
			name:    "step 1 missing email",
			step:    StepPersonalInfo,
			profile: models.StudentProfile{FirstName: "Ada", LastName: "Lovelace"},
			wantErr: "email is required",
		},
		{
			name:    "step 1 ok",
			step:    StepPersonalInfo,
			profile: models.StudentProfile{FirstName: "Ada", LastName: "Lovelace", Email: "ada@b.com"},
		},
		{
			name:    "step 2 nothing supplied",
			step:    StepAcademic,
			profile: models.StudentProfile{},
			wantErr: "at least one of GPA, SAT, or ACT is required",
		},
		{
			name:    "step 2 gpa alone is enough",
			step:    StepAcademic,
			profile: models.StudentProfile{GPA: floatPtr(3.75)},
		},
		{
			name:    "step 2 act alone is enough",
			step:    StepAcademic,
			profile: models.StudentProfile{ACTScore: intPtr(31)},
		},
		{
			name:    "step 3 has no guard",
			step:    StepExtracurriculars,
			profile: models.StudentProfile{},
		},
		{
			name:    "step 4 mix sums to 100",
			step:    StepPreferences,
			profile: models.StudentProfile{SafetyPercent: 30, TargetPercent: 50, ReachPercent: 20},
		},
		{
			name:    "step 4 mix off by one",
			step:    StepPreferences,
			profile: models.StudentProfile{SafetyPercent: 30, TargetPercent: 50, ReachPercent: 21},
			wantErr: "school mix percentages must total 100% (currently 101%)",
		},
		{
			name:    "step 5 has no guard",
			step:    StepReview,
			profile: models.StudentProfile{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.step, &tt.profile)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr ValidationError
			assert.True(t, errors.As(err, &verr), "guard failures must be ValidationError")
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestAdvanceSavesBeforeMoving(t *testing.T) {
	saver := &fakeSaver{}
	flow := NewFlow(saver)
	p := &models.StudentProfile{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@b.com",
		WizardStep: 1,
	}

	next, err := flow.Advance(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, StepAcademic, next)
	assert.Equal(t, 2, p.WizardStep)
	assert.Equal(t, 1, saver.saves)
}

func TestAdvanceBlockedByGuard(t *testing.T) {
	saver := &fakeSaver{}
	flow := NewFlow(saver)
	p := &models.StudentProfile{WizardStep: 4, SafetyPercent: 40, TargetPercent: 40, ReachPercent: 30}

	step, err := flow.Advance(context.Background(), p)
	require.Error(t, err)
	assert.Equal(t, StepPreferences, step)
	assert.Contains(t, err.Error(), "currently 110%")
	assert.Equal(t, 4, p.WizardStep, "step must not advance on guard failure")
	assert.Zero(t, saver.saves, "guard failures must not hit storage")
}

func TestAdvanceBlockedBySaveFailure(t *testing.T) {
	saver := &fakeSaver{fail: errors.New("connection refused")}
	flow := NewFlow(saver)
	p := &models.StudentProfile{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@b.com",
		WizardStep: 1,
	}

	step, err := flow.Advance(context.Background(), p)
	require.Error(t, err)
	assert.Equal(t, StepPersonalInfo, step)
	assert.Equal(t, 1, p.WizardStep, "failed save must block advancement")
}

func TestCompletingReviewMarksProfileComplete(t *testing.T) {
	saver := &fakeSaver{}
	flow := NewFlow(saver)
	p := &models.StudentProfile{WizardStep: 5, Status: models.ProfileInProgress}

	next, err := flow.Advance(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, StepReview, next)
	assert.Equal(t, models.ProfileComplete, p.Status)
}

// A profile with GPA and SAT but no extracurricular data can walk the
// whole flow: step 3 has no guard.
func TestMinimalProfileReachesReview(t *testing.T) {
	saver := &fakeSaver{}
	flow := NewFlow(saver)
	p := &models.StudentProfile{
		FirstName: "Demo", LastName: "Student", Email: "demo@example.com",
		GPA: floatPtr(3.75), SATScore: intPtr(1450),
		SafetyPercent: 30, TargetPercent: 50, ReachPercent: 20,
		WizardStep: 1,
	}

	for i := 0; i < 4; i++ {
		_, err := flow.Advance(context.Background(), p)
		require.NoError(t, err, "advance from step %d", i+1)
	}
	assert.Equal(t, 5, p.WizardStep)
	assert.Equal(t, StepReview, flow.Current(p))
}
