// Package legal generates formal filings: death notification letters,
// probate petition outlines, and jurisdiction law summaries. Letter and
// petition templates carry bracket placeholders (e.g. [DATE_OF_DEATH])
// that are intentionally left unresolved for manual completion.
package legal

import (
	"strings"
	"text/template"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/estate-cli/internal/model"
	"github.com/sells-group/estate-cli/internal/registry"
)

var titleCaser = cases.Title(language.English)

var letterTemplate = template.Must(template.New("letter").Parse(`{{.Address}}

Date: {{.Date}}

Subject: {{.Subject}}

Dear {{.DisplayName}} Support Team,

I am writing to notify you of the death of {{.DeceasedName}}, who passed away on [DATE_OF_DEATH]. I am the {{.Relationship}} of the deceased and have been appointed as the executor of their estate.

I am requesting access to the deceased's account(s) on your platform to:
1. Preserve important family memories and documents
2. Close the account in accordance with your policies
3. Retrieve any important personal or business information
4. Address any ongoing services or subscriptions

Account Information:
- Account Holder: {{.DeceasedName}}
- Relationship to Deceased: {{.Relationship}}
- Executor/Requester: {{.ExecutorName}}

I have attached the following required documentation:
[ ] Certified Death Certificate
[ ] Copy of my government-issued identification
[ ] Proof of relationship to the deceased
[ ] Legal documentation establishing my authority as executor

Please advise me on any additional steps required to process this request. I understand that this process may take several weeks and appreciate your assistance during this difficult time.

I can be reached at [YOUR_EMAIL] or [YOUR_PHONE] if you need any additional information.

Thank you for your prompt attention to this matter.

Sincerely,

{{.ExecutorName}}
Executor of the Estate of {{.DeceasedName}}

---
INSTRUCTIONS:
1. Fill in the bracketed information: [DATE_OF_DEATH], [YOUR_EMAIL], [YOUR_PHONE]
2. Gather all required documents before submission
3. {{.SpecialNote}}
4. Submission method: {{.FormURL}}`))

// Letters generates platform filings from the reference table.
type Letters struct {
	reg *registry.Registry
	now func() time.Time
}

// NewLetters creates a Letters generator using the wall clock.
func NewLetters(reg *registry.Registry) *Letters {
	return &Letters{reg: reg, now: time.Now}
}

// Notification produces a death notification letter for one platform.
// Unknown platforms get a generic addressee built from the platform
// string rather than an error.
func (l *Letters) Notification(platform, deceasedName, executorName, relationship string) (model.LetterResult, error) {
	displayName := titleCaser.String(strings.Split(platform, ".")[0])

	address := displayName + " Support Team"
	subject := "Deceased User Account Access Request"
	specialNote := "Contact customer support for specific procedures"
	formURL := "Check platform's help documentation"
	if info, ok := l.reg.Platform(platform); ok && info.MailingAddress != "" {
		address = info.MailingAddress
		subject = info.LetterSubject
		specialNote = info.SpecialNote
		formURL = info.FormURL
	}

	var body strings.Builder
	err := letterTemplate.Execute(&body, map[string]string{
		"Address":      address,
		"Date":         l.now().Format("January 2, 2006"),
		"Subject":      subject,
		"DisplayName":  displayName,
		"DeceasedName": deceasedName,
		"ExecutorName": executorName,
		"Relationship": relationship,
		"SpecialNote":  specialNote,
		"FormURL":      formURL,
	})
	if err != nil {
		return model.LetterResult{}, eris.Wrap(err, "legal: render notification letter")
	}

	return model.LetterResult{
		Status:        model.StatusSuccess,
		Platform:      platform,
		LetterContent: body.String(),
		RequiredDocuments: []string{
			"Certified Death Certificate",
			"Government-issued ID of executor",
			"Proof of relationship to deceased",
			"Legal documentation of executor authority",
		},
		SubmissionURL:           formURL,
		EstimatedProcessingTime: "30-90 days depending on platform",
	}, nil
}
