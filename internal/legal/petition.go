package legal

import (
	"strings"
	"text/template"

	"github.com/rotisserie/eris"

	"github.com/sells-group/estate-cli/internal/model"
)

var petitionTemplate = template.Must(template.New("petition").Parse(`PROBATE COURT PETITION OUTLINE
State: {{.State}}
Case: Estate of {{.DeceasedName}}

I. PETITION FOR APPOINTMENT OF PERSONAL REPRESENTATIVE
   A. Petitioner Information
      - Name: {{.ExecutorName}}
      - Relationship to Deceased: [RELATIONSHIP]
      - Address: [EXECUTOR_ADDRESS]

   B. Deceased Information
      - Full Name: {{.DeceasedName}}
      - Date of Death: [DATE_OF_DEATH]
      - Date of Birth: [DATE_OF_BIRTH]
      - Last Address: [DECEASED_ADDRESS]

   C. Estate Information
      - Estimated Value: [ESTATE_VALUE]
      - Will Status: [WITH_WILL or INTESTATE]
      - Digital Assets Summary: {{.AssetsSummary}}

II. DIGITAL ASSET MANAGEMENT AUTHORITY
   A. Request for Authority to Access Digital Assets
      - Email accounts containing important communications
      - Cloud storage with family photos and documents
      - Financial accounts and cryptocurrency
      - Business accounts and intellectual property
      - Social media accounts for memorialization

   B. Compliance with State Digital Asset Laws
      - Reference to Revised Uniform Fiduciary Access to Digital Assets Act (RUFADAA)
      - Authority to act as fiduciary for digital assets
      - Powers to manage, access, and distribute digital property

III. REQUIRED ATTACHMENTS
   [ ] Death Certificate (certified copy)
   [ ] Will (if available)
   [ ] Digital Asset Inventory
   [ ] Waiver of Notice (if applicable)
   [ ] Bond (if required by court)
   [ ] Acceptance of Appointment

IV. RELIEF SOUGHT
   The Court is respectfully requested to:
   1. Appoint {{.ExecutorName}} as Personal Representative
   2. Grant authority to access and manage digital assets
   3. Issue Letters Testamentary/Letters of Administration
   4. Authorize communication with digital service providers
   5. Grant such other relief as the Court deems proper

V. STATE-SPECIFIC REQUIREMENTS FOR {{.StateUpper}}
   [This section would include state-specific legal requirements]

NEXT STEPS:
1. Complete all bracketed information
2. Gather required attachments
3. File with appropriate probate court
4. Pay required filing fees
5. Serve notice to interested parties as required by law

ESTIMATED TIMELINE: 4-8 weeks for court approval
ESTIMATED COST: $500-2,000 in court fees and legal costs`))

// Petition produces a probate petition outline for the given state. The
// outline is a starting point for an attorney, not a filing.
func (l *Letters) Petition(state, deceasedName, executorName, assetsSummary string) (model.PetitionResult, error) {
	var body strings.Builder
	err := petitionTemplate.Execute(&body, map[string]string{
		"State":         state,
		"StateUpper":    strings.ToUpper(state),
		"DeceasedName":  deceasedName,
		"ExecutorName":  executorName,
		"AssetsSummary": assetsSummary,
	})
	if err != nil {
		return model.PetitionResult{}, eris.Wrap(err, "legal: render petition outline")
	}

	return model.PetitionResult{
		Status:          model.StatusSuccess,
		State:           state,
		PetitionOutline: body.String(),
		FilingRequirements: []string{
			"File with " + state + " Probate Court",
			"Pay required filing fees",
			"Serve notice to heirs and beneficiaries",
			"Attend court hearing if required",
		},
		EstimatedTimeline: "4-8 weeks for court approval",
		Recommendation:    "Consult with a local probate attorney for state-specific requirements",
	}, nil
}
