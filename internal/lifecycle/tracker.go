// Package lifecycle derives a case's current status from elapsed time.
// Status is recomputed on every query rather than stored, so it can
// never drift; there is no background updater to run.
package lifecycle

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/estate-cli/internal/model"
	"github.com/sells-group/estate-cli/internal/registry"
	"github.com/sells-group/estate-cli/internal/store"
)

// maxSampleCases caps the discovery aid attached to not_found results.
const maxSampleCases = 5

// Tracker answers get-case-status queries.
type Tracker struct {
	store store.Store
	reg   *registry.Registry
	now   func() time.Time
}

// New creates a Tracker using the wall clock.
func New(reg *registry.Registry, st store.Store) *Tracker {
	return &Tracker{store: st, reg: reg, now: time.Now}
}

// Status reports the current lifecycle tier, a remaining-time estimate,
// and recommended next actions for one case. Unknown identifiers return
// not_found with up to five known identifiers as a discovery aid; a
// store read failure returns a generic error result.
func (t *Tracker) Status(caseID string) model.CaseStatusReport {
	cases, err := t.store.Load()
	if err != nil {
		zap.L().Error("case store read failed", zap.Error(err))
		return model.CaseStatusReport{
			Status:  model.StatusError,
			Message: "Error reading tracking data",
		}
	}

	c, ok := cases[caseID]
	if !ok {
		report := model.CaseStatusReport{
			Status:     model.StatusNotFound,
			Message:    fmt.Sprintf("Case ID %s not found", caseID),
			Suggestion: "Please check the case ID or use the exact ID provided when the case was created. Format: GOOGLE_20241218_143052",
		}
		for id := range cases {
			report.AvailableCases = append(report.AvailableCases, id)
			if len(report.AvailableCases) == maxSampleCases {
				break
			}
		}
		return report
	}

	elapsed := int(t.now().Sub(c.CreatedDate).Hours() / 24)

	info, ok := t.reg.Platform(c.Platform)
	if !ok {
		info = t.reg.DefaultPlatform()
	}
	tier, estimate := deriveTier(c.Platform, info, elapsed)

	return model.CaseStatusReport{
		Status:          model.StatusSuccess,
		CaseID:          c.CaseID,
		Platform:        c.Platform,
		DeceasedName:    c.DeceasedName,
		ExecutorName:    c.ExecutorName,
		CreatedDate:     c.CreatedDate,
		DaysElapsed:     elapsed,
		CurrentStatus:   tier,
		EstimatedWindow: estimate,
		NextSteps:       nextActions(elapsed),
		TimelineProgress: map[string]string{
			"submitted":         "completed",
			"under_review":      reviewProgress(elapsed, info.TimelineDaysMax),
			"response_expected": "expected within platform timeline",
			"completion":        "pending platform response",
		},
	}
}

// deriveTier buckets elapsed days against the platform's expected
// processing window. Once past the upper bound the estimate states the
// overdue magnitude; it never reports a negative remainder.
func deriveTier(platform string, info model.Platform, elapsedDays int) (tier, estimate string) {
	lower, upper := info.TimelineDaysMin, info.TimelineDaysMax

	switch {
	case elapsedDays < lower:
		return model.TierUnderReview,
			fmt.Sprintf("%d to %d days remaining", lower-elapsedDays, upper-elapsedDays)
	case elapsedDays < upper:
		rule := ruleFor(platform)
		if rule.midTier == model.TierShouldHearBackSoon {
			return rule.midTier, fmt.Sprintf("Any day now to %d days", upper-elapsedDays)
		}
		return rule.midTier, fmt.Sprintf("Should complete within %d days", upper-elapsedDays)
	default:
		return model.TierFollowUpRecommended,
			fmt.Sprintf("%d days past the expected window - contact %s support for a status update", elapsedDays-upper, info.Name)
	}
}

func reviewProgress(elapsedDays, upper int) string {
	if elapsedDays < upper {
		return "in progress"
	}
	return "overdue"
}
