package legal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/estate-cli/internal/model"
	"github.com/sells-group/estate-cli/internal/registry"
)

func newLetters(t *testing.T) *Letters {
	t.Helper()
	l := NewLetters(registry.MustNew())
	l.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
	return l
}

func TestNotificationKnownPlatform(t *testing.T) {
	l := newLetters(t)

	res, err := l.Notification("google.com", "Jane Doe", "John Doe", "spouse")
	require.NoError(t, err)

	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Contains(t, res.LetterContent, "Google LLC")
	assert.Contains(t, res.LetterContent, "Dear Google Support Team,")
	assert.Contains(t, res.LetterContent, "Jane Doe")
	assert.Contains(t, res.LetterContent, "John Doe")
	assert.Contains(t, res.LetterContent, "spouse")
	assert.Contains(t, res.LetterContent, "Date: March 1, 2026")
	assert.Equal(t, "https://support.google.com/accounts/contact/deceased", res.SubmissionURL)
}

func TestNotificationBracketPlaceholdersAreLiteral(t *testing.T) {
	l := newLetters(t)

	res, err := l.Notification("facebook.com", "Jane Doe", "John Doe", "child")
	require.NoError(t, err)

	for _, placeholder := range []string{"[DATE_OF_DEATH]", "[YOUR_EMAIL]", "[YOUR_PHONE]"} {
		assert.Contains(t, res.LetterContent, placeholder)
	}
}

func TestNotificationUnknownPlatformFallback(t *testing.T) {
	l := newLetters(t)

	res, err := l.Notification("flickr.com", "Jane Doe", "John Doe", "sibling")
	require.NoError(t, err)

	assert.Contains(t, res.LetterContent, "Flickr Support Team")
	assert.Contains(t, res.LetterContent, "Contact customer support for specific procedures")
	assert.Equal(t, "Check platform's help documentation", res.SubmissionURL)
}

func TestPetitionOutline(t *testing.T) {
	l := newLetters(t)

	res, err := l.Petition("California", "Jane Doe", "John Doe", "Gmail account, iCloud photos, Coinbase balance")
	require.NoError(t, err)

	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Contains(t, res.PetitionOutline, "State: California")
	assert.Contains(t, res.PetitionOutline, "Estate of Jane Doe")
	assert.Contains(t, res.PetitionOutline, "STATE-SPECIFIC REQUIREMENTS FOR CALIFORNIA")
	assert.Contains(t, res.PetitionOutline, "Coinbase balance")
	assert.Contains(t, res.PetitionOutline, "[DATE_OF_DEATH]")
	assert.Contains(t, res.PetitionOutline, "[ESTATE_VALUE]")
	assert.Contains(t, res.FilingRequirements[0], "California")
}

func TestCheckStateLawSeeded(t *testing.T) {
	l := newLetters(t)

	res := l.CheckStateLaw("California")
	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Contains(t, res.DigitalAssetLaw.LawName, "California")
	assert.Equal(t, "Probate Code Section 850-859", res.DigitalAssetLaw.CodeSection)
	assert.NotEmpty(t, res.ComplianceChecklist)
}

func TestCheckStateLawFallback(t *testing.T) {
	l := newLetters(t)

	res := l.CheckStateLaw("Wyoming")
	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Equal(t, "Wyoming Digital Asset Laws", res.DigitalAssetLaw.LawName)
	assert.Equal(t, "Consult state statutes", res.DigitalAssetLaw.CodeSection)
	assert.Equal(t, "Possibly", res.DigitalAssetLaw.CourtOrderRequired)
}
