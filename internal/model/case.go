package model

import "time"

// CaseStatus is the stored status of a case. Only "submitted" is ever
// written; the displayed lifecycle tier is recomputed from elapsed time
// on every query and never persisted.
type CaseStatus string

const CaseStatusSubmitted CaseStatus = "submitted"

// Lifecycle tiers derived from elapsed days against the platform's
// expected processing window. The mid-window tier wording varies by
// platform. There is no terminal tier: once past the upper bound a case
// stays in follow_up_recommended indefinitely.
const (
	TierUnderReview         = "under_review"
	TierShouldHearBackSoon  = "should_hear_back_soon"
	TierStillProcessing     = "still_processing"
	TierFollowUpRecommended = "follow_up_recommended"
)

// Case is a single outreach attempt to one platform regarding one
// deceased person. The CaseID is immutable once assigned and cases are
// never deleted by normal operation.
type Case struct {
	CaseID       string     `json:"case_id"`
	Platform     string     `json:"platform"`
	DeceasedName string     `json:"deceased_name"`
	ExecutorName string     `json:"executor_name"`
	ActionType   string     `json:"action_type"`
	CreatedDate  time.Time  `json:"created_date"`
	Status       CaseStatus `json:"status"`
	LastUpdated  time.Time  `json:"last_updated"`
}

// CaseStatusReport is the result of a get-case-status query.
type CaseStatusReport struct {
	Status           ResultStatus      `json:"status"`
	CaseID           string            `json:"case_id,omitempty"`
	Platform         string            `json:"platform,omitempty"`
	DeceasedName     string            `json:"deceased_name,omitempty"`
	ExecutorName     string            `json:"executor_name,omitempty"`
	CreatedDate      time.Time         `json:"created_date,omitzero"`
	DaysElapsed      int               `json:"days_elapsed"`
	CurrentStatus    string            `json:"current_status,omitempty"`
	EstimatedWindow  string            `json:"estimated_completion,omitempty"`
	NextSteps        []string          `json:"next_steps,omitempty"`
	TimelineProgress map[string]string `json:"timeline_progress,omitempty"`
	Message          string            `json:"message,omitempty"`
	AvailableCases   []string          `json:"available_cases,omitempty"`
	Suggestion       string            `json:"suggestion,omitempty"`
}
