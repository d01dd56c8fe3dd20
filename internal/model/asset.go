package model

import "time"

// DiscoveryMethod names the heuristic rule that produced a candidate.
type DiscoveryMethod string

const (
	MethodDomainMatch    DiscoveryMethod = "domain-match"
	MethodCommonPlatform DiscoveryMethod = "common-platform-inference"
	MethodKeyword        DiscoveryMethod = "keyword-inference"
)

// Priority classifies a candidate's urgency. It is an independent axis
// from the confidence score: a low-success-rate cryptocurrency lead is
// still HIGH priority.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
)

// UnconfirmedIdentifier is the placeholder used when a candidate was
// inferred rather than matched to a concrete account.
const UnconfirmedIdentifier = "To be determined"

// RecoveryInfo summarizes what recovering an account on this platform
// involves. Copied from the platform reference table onto each candidate.
type RecoveryInfo struct {
	Timeline          string   `json:"timeline"`
	RequiredDocuments []string `json:"required_documents"`
	SuccessRate       int      `json:"success_rate"`
	EstimatedValue    string   `json:"estimated_value"`
}

// CandidateAsset is an inferred, not confirmed, digital account believed
// to belong to the deceased. Confidence scores are heuristic estimates,
// not measured probabilities.
type CandidateAsset struct {
	Platform          string          `json:"platform"`
	PlatformName      string          `json:"platform_name"`
	Services          []string        `json:"services"`
	AccountIdentifier string          `json:"account_identifier"`
	ConfidenceScore   float64         `json:"confidence_score"`
	DiscoveryMethod   DiscoveryMethod `json:"discovery_method"`
	RecoveryInfo      RecoveryInfo    `json:"recovery_info"`
	Priority          Priority        `json:"priority"`
}

// DiscoveryReport is the result of a discover-assets query.
type DiscoveryReport struct {
	Status             ResultStatus     `json:"status"`
	DeceasedName       string           `json:"deceased_name"`
	DiscoveryDate      time.Time        `json:"discovery_date"`
	TotalAssets        int              `json:"total_assets_discovered"`
	HighPriorityAssets int              `json:"high_priority_assets"`
	Assets             []CandidateAsset `json:"discovered_assets"`
	NextSteps          []string         `json:"next_steps"`
	TotalRecoveryTime  string           `json:"estimated_total_recovery_time"`
}

// CorrespondenceFindings groups the matches extracted from free-form
// correspondence text by indicator category.
type CorrespondenceFindings struct {
	AccountConfirmations []string `json:"account_confirmations"`
	FinancialIndicators  []string `json:"financial_indicators"`
	SubscriptionServices []string `json:"subscription_services"`
	ConfidenceScore      float64  `json:"confidence_score"`
}

// AnalysisReport is the result of an analyze-correspondence-text query.
type AnalysisReport struct {
	Status          ResultStatus           `json:"status"`
	AnalysisResults CorrespondenceFindings `json:"analysis_results"`
	Recommendations []string               `json:"recommendations"`
}
