package lifecycle

import "github.com/sells-group/estate-cli/internal/model"

// Two rule tables drive a status report. They are deliberately
// independent: tier derivation uses the platform-specific timeline
// bounds from the reference table, while next-action text uses the
// fixed elapsed-day brackets below. Unifying them would change observed
// behavior; keep them separate and separately tested.

// timelineRule sets the per-platform wording for the mid-window tier.
type timelineRule struct {
	midTier string
}

var timelineRules = map[string]timelineRule{
	"Facebook": {midTier: model.TierShouldHearBackSoon},
}

// defaultTimelineRule covers every platform without special wording.
var defaultTimelineRule = timelineRule{midTier: model.TierStillProcessing}

func ruleFor(platform string) timelineRule {
	if r, ok := timelineRules[platform]; ok {
		return r
	}
	return defaultTimelineRule
}

// actionBracket maps an elapsed-day ceiling to recommended next actions.
type actionBracket struct {
	maxDays int // exclusive upper bound; <0 means unbounded
	actions []string
}

var actionBrackets = []actionBracket{
	{
		maxDays: 30,
		actions: []string{
			"Wait for platform response (still within normal timeline)",
			"Prepare any additional documents that might be requested",
		},
	},
	{
		maxDays: 60,
		actions: []string{
			"Monitor email for platform communications",
			"Still within normal processing time - continue waiting",
		},
	},
	{
		maxDays: -1,
		actions: []string{
			"Send follow-up email - processing time exceeded",
			"Consider contacting platform support directly",
		},
	},
}

func nextActions(elapsedDays int) []string {
	for _, b := range actionBrackets {
		if b.maxDays < 0 || elapsedDays < b.maxDays {
			return b.actions
		}
	}
	return nil
}
