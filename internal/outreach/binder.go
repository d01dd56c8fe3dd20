// Package outreach generates platform recovery correspondence and
// records a tracking case for each generated artifact.
package outreach

import (
	"strings"
	"text/template"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/estate-cli/internal/model"
	"github.com/sells-group/estate-cli/internal/registry"
)

// Request holds the party facts bound into a recovery email. Fields are
// trusted input and substituted verbatim, without escaping.
type Request struct {
	Platform             string `json:"platform"`
	DeceasedName         string `json:"deceased_name"`
	DeceasedEmail        string `json:"deceased_email"`
	DeceasedDate         string `json:"deceased_date"`
	ExecutorName         string `json:"executor_name"`
	ExecutorEmail        string `json:"executor_email"`
	ExecutorRelationship string `json:"executor_relationship"`
	AvailableDocuments   string `json:"available_documents"`
}

// Document is a fully bound recovery email plus the platform facts the
// caller needs to route it.
type Document struct {
	CaseID       string
	Subject      string
	Body         string
	SupportEmail string
	Timeline     string
	Platform     model.Platform
}

// DeriveCaseID builds the tracking identifier for a new case:
// {PLATFORM_UPPERCASE}_{YYYYMMDD}_{HHMMSS}. Uniqueness rests on the
// assumption that no two cases are created in the same second for the
// same platform; a same-second collision overwrites (last write wins).
func DeriveCaseID(platform string, now time.Time) string {
	return strings.ToUpper(platform) + "_" + now.Format("20060102_150405")
}

var recoveryBody = template.Must(template.New("recovery").Parse(`Dear {{.Req.Platform}} Support Team,

I hope this message finds you well. I am writing to inform you of the passing of {{.Req.DeceasedName}}, who held an account with {{.Req.Platform}} under the email address {{.Req.DeceasedEmail}}.

DECEASED INFORMATION:
- Full Name: {{.Req.DeceasedName}}
- Email Address: {{.Req.DeceasedEmail}}
- Date of Passing: {{.Req.DeceasedDate}}

REQUESTING PARTY INFORMATION:
- Name: {{.Req.ExecutorName}}
- Email: {{.Req.ExecutorEmail}}
- Relationship to Deceased: {{.Req.ExecutorRelationship}}

I am reaching out to request assistance with accessing or managing the deceased's {{.Req.Platform}} account in accordance with your {{.Info.Process}} procedures. This request is being made to:

1. Preserve important family memories and documents
2. Properly close the account per your policies
3. Retrieve any essential personal or business information
4. Address ongoing services or subscriptions

AVAILABLE DOCUMENTATION:
{{.Req.AvailableDocuments}}

I understand that {{.Req.Platform}} has specific procedures for handling deceased user accounts, and I am prepared to provide any additional documentation required. Based on your published guidelines, I expect this process may take approximately {{.Info.Timeline}}.

If there is a preferred form or additional process I should follow, please direct me to the appropriate resources. I have noted that {{.Req.Platform}} may have an online form at: {{.Info.FormURL}}

I would greatly appreciate your guidance on the next steps and any specific requirements for processing this request. This is already a difficult time for our family, and your assistance would be invaluable.

Please feel free to contact me at {{.Req.ExecutorEmail}} or respond to this email if you need any additional information or documentation.

Thank you for your time and consideration.

Respectfully,

{{.Req.ExecutorName}}
{{.Req.ExecutorRelationship}} of {{.Req.DeceasedName}}
Email: {{.Req.ExecutorEmail}}

---
This request is made in accordance with applicable digital estate laws and {{.Req.Platform}}'s deceased user policies.`))

// Binder renders recovery emails against the platform reference table.
type Binder struct {
	reg *registry.Registry
	now func() time.Time
}

// NewBinder creates a Binder using the wall clock.
func NewBinder(reg *registry.Registry) *Binder {
	return &Binder{reg: reg, now: time.Now}
}

// Bind produces the subject, body, and derived case identifier for a
// recovery email. Platform lookups that miss the reference table fall
// back to the default entry rather than failing.
func (b *Binder) Bind(req Request) (Document, error) {
	info, ok := b.reg.Platform(req.Platform)
	if !ok {
		info = b.reg.DefaultPlatform()
	}

	var body strings.Builder
	err := recoveryBody.Execute(&body, struct {
		Req  Request
		Info model.Platform
	}{req, info})
	if err != nil {
		return Document{}, eris.Wrap(err, "outreach: render recovery email")
	}

	return Document{
		CaseID:       DeriveCaseID(req.Platform, b.now()),
		Subject:      "Digital Estate Recovery Request - " + req.Platform + " Account of " + req.DeceasedName + " (Deceased)",
		Body:         body.String(),
		SupportEmail: info.SupportEmail,
		Timeline:     info.Timeline,
		Platform:     info,
	}, nil
}
