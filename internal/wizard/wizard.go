// Package wizard drives the linear five-step profile flow. Each step has
// a guard; advancing validates the guard, persists the profile, then
// moves on. A failed save blocks the transition.
package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepAcademic
	StepExtracurriculars
	StepPreferences
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepPersonalInfo:
		return "personal_info"
	case StepAcademic:
		return "academic"
	case StepExtracurriculars:
		return "extracurriculars"
	case StepPreferences:
		return "preferences"
	case StepReview:
		return "review"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// ValidationError is a guard failure, shown inline to the user. It is
// distinct from save errors, which indicate a storage problem.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Validate runs the guard for a single step against the draft profile.
func Validate(step Step, p *models.StudentProfile) error {
	switch step {
	case StepPersonalInfo:
		if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
			return ValidationError("first and last name are required")
		}
		if strings.TrimSpace(p.Email) == "" {
			return ValidationError("email is required")
		}
	case StepAcademic:
		if p.GPA == nil && p.SATScore == nil && p.ACTScore == nil {
			return ValidationError("at least one of GPA, SAT, or ACT is required")
		}
	case StepExtracurriculars:
		// no guard: a profile may legitimately have no activities
	case StepPreferences:
		sum := p.SafetyPercent + p.TargetPercent + p.ReachPercent
		if sum != 100 {
			return ValidationError(fmt.Sprintf("school mix percentages must total 100%% (currently %d%%)", sum))
		}
	case StepReview:
		// no guard
	default:
		return ValidationError(fmt.Sprintf("unknown step %d", int(step)))
	}
	return nil
}

// Saver persists the draft profile on every transition.
type Saver interface {
	SaveProfile(ctx context.Context, p *models.StudentProfile) error
}

type Flow struct {
	saver Saver
}

func NewFlow(s Saver) *Flow { return &Flow{saver: s} }

// Current reports the step the profile is on.
func (f *Flow) Current(p *models.StudentProfile) Step {
	step := Step(p.WizardStep)
	if step < StepPersonalInfo {
		return StepPersonalInfo
	}
	if step > StepReview {
		return StepReview
	}
	return step
}

// Advance validates the current step's guard, saves, and moves to the
// next step. Completing the review step marks the profile complete. On
// any error the profile's step and status are left unchanged.
func (f *Flow) Advance(ctx context.Context, p *models.StudentProfile) (Step, error) {
	step := f.Current(p)
	if err := Validate(step, p); err != nil {
		return step, err
	}

	prevStep := p.WizardStep
	prevStatus := p.Status
	if step == StepReview {
		p.Status = models.ProfileComplete
	} else {
		p.WizardStep = int(step) + 1
	}

	if err := f.saver.SaveProfile(ctx, p); err != nil {
		p.WizardStep = prevStep
		p.Status = prevStatus
		return step, fmt.Errorf("saving profile: %w", err)
	}
	return f.Current(p), nil
}
