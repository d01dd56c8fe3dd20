package legal

import (
	"github.com/sells-group/estate-cli/internal/model"
)

// CheckStateLaw summarizes a jurisdiction's digital-asset inheritance
// law. States outside the seeded table get a generic fallback entry
// pointing at the state's own statutes; the result is still a success.
func (l *Letters) CheckStateLaw(state string) model.StateLawReport {
	law, ok := l.reg.StateLaw(state)
	if !ok {
		law = model.StateLaw{
			LawName:            state + " Digital Asset Laws",
			CodeSection:        "Consult state statutes",
			KeyProvisions:      []string{"Check state-specific RUFADAA adoption"},
			ExecutorPowers:     "Varies by state",
			CourtOrderRequired: "Possibly",
		}
	}

	return model.StateLawReport{
		Status:          model.StatusSuccess,
		State:           state,
		DigitalAssetLaw: law,
		Recommendation:  "Consult with local estate attorney for current law interpretation",
		ComplianceChecklist: []string{
			"Verify current state law status",
			"Review will for digital asset provisions",
			"Prepare proper executor documentation",
			"Follow state-specific procedures",
		},
	}
}
