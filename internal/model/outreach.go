package model

// EmailPreview carries the subject and a truncated body for display.
type EmailPreview struct {
	Subject     string `json:"subject"`
	BodyPreview string `json:"body_preview"`
}

// OutreachResult is the result of generate-recovery-outreach. The full
// body is always present regardless of transport outcome so the artifact
// survives a failed or unconfigured send.
type OutreachResult struct {
	Status                ResultStatus `json:"status"`
	CaseID                string       `json:"case_id"`
	Message               string       `json:"message"`
	Platform              string       `json:"platform"`
	SupportEmail          string       `json:"support_email"`
	EstimatedResponseTime string       `json:"estimated_response_time"`
	Subject               string       `json:"subject"`
	Body                  string       `json:"body"`
	EmailPreview          EmailPreview `json:"email_preview"`
	DemoNote              string       `json:"demo_note,omitempty"`
	NextSteps             []string     `json:"next_steps"`
}

// LetterResult is the result of generate-notification-letter. Bracket
// placeholders in the letter body are intentionally unresolved and must
// be completed by hand.
type LetterResult struct {
	Status                  ResultStatus `json:"status"`
	Platform                string       `json:"platform"`
	LetterContent           string       `json:"letter_content"`
	RequiredDocuments       []string     `json:"required_documents"`
	SubmissionURL           string       `json:"submission_url"`
	EstimatedProcessingTime string       `json:"estimated_processing_time"`
}

// PetitionResult is the result of generate-petition-outline.
type PetitionResult struct {
	Status             ResultStatus `json:"status"`
	State              string       `json:"state"`
	PetitionOutline    string       `json:"petition_outline"`
	FilingRequirements []string     `json:"filing_requirements"`
	EstimatedTimeline  string       `json:"estimated_timeline"`
	Recommendation     string       `json:"recommendation"`
}
