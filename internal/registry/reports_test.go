package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/estate-cli/internal/model"
)

func TestOptionsReport(t *testing.T) {
	report := MustNew().Options()

	require.Equal(t, model.StatusSuccess, report.Status)
	require.Contains(t, report.SupportedPlatforms, "Google")
	google := report.SupportedPlatforms["Google"]
	assert.Equal(t, "85%", google.SuccessRate)
	assert.Equal(t, "30-90 days", google.Timeline)
	assert.Contains(t, google.Services, "Gmail")

	// Only platforms with a primary recovery method are compared.
	assert.NotContains(t, report.SupportedPlatforms, "Cryptocurrency Accounts")
	assert.NotEmpty(t, report.GeneralRequirements)
	assert.NotEmpty(t, report.RecommendedOrder)
	assert.NotEmpty(t, report.Tips)
}

func TestGuideReport(t *testing.T) {
	report := MustNew().GuideReport("google")

	require.Equal(t, model.StatusSuccess, report.Status)
	assert.Equal(t, "Google", report.Platform)
	require.NotNil(t, report.Guide)
	assert.Equal(t, "Google Deceased User Notification", report.Guide.FormName)
	assert.Equal(t,
		"Complete the Google Deceased User Notification at https://support.google.com/accounts/contact/deceased. Expected processing time: 30-90 days.",
		report.Summary)
}

func TestGuideReportNotFound(t *testing.T) {
	report := MustNew().GuideReport("Friendster")

	assert.Equal(t, model.StatusNotFound, report.Status)
	assert.Contains(t, report.Message, "Friendster")
	assert.Equal(t, []string{"Facebook", "Google"}, report.AvailablePlatforms)
	assert.Nil(t, report.Guide)
}
