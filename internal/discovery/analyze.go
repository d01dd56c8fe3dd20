package discovery

import (
	"regexp"

	"github.com/sells-group/estate-cli/internal/model"
)

// Correspondence indicator patterns. Each pattern captures the platform
// or amount in its first group; only the captured text is reported.
var (
	accountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)welcome to (\w+)`),
		regexp.MustCompile(`(?i)account.*created.*(\w+\.com)`),
		regexp.MustCompile(`(?i)confirm.*account.*(\w+\.com)`),
		regexp.MustCompile(`(?i)verify.*email.*(\w+\.com)`),
	}
	financialPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)statement.*from.*(\w+)`),
		regexp.MustCompile(`(?i)balance.*(\$[\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)transaction.*(\w+\.com)`),
		regexp.MustCompile(`(?i)payment.*received.*(\w+)`),
	}
	subscriptionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)subscription.*(\w+\.com)`),
		regexp.MustCompile(`(?i)membership.*(\w+)`),
		regexp.MustCompile(`(?i)billing.*(\w+\.com)`),
		regexp.MustCompile(`(?i)auto.*renew.*(\w+)`),
	}
)

// confidencePerFinding scales the count of matched indicators into a
// score capped at 1.0.
const confidencePerFinding = 0.1

// AnalyzeCorrespondence scans free-form correspondence text for account
// confirmations, financial indicators, and subscription notices. It is
// a pure text scan with no store or registry dependency.
func AnalyzeCorrespondence(text string) model.AnalysisReport {
	findings := model.CorrespondenceFindings{
		AccountConfirmations: extract(accountPatterns, text),
		FinancialIndicators:  extract(financialPatterns, text),
		SubscriptionServices: extract(subscriptionPatterns, text),
	}

	total := len(findings.AccountConfirmations) +
		len(findings.FinancialIndicators) +
		len(findings.SubscriptionServices)
	findings.ConfidenceScore = float64(total) * confidencePerFinding
	if findings.ConfidenceScore > 1.0 {
		findings.ConfidenceScore = 1.0
	}

	return model.AnalysisReport{
		Status:          model.StatusSuccess,
		AnalysisResults: findings,
		Recommendations: []string{
			"Use account confirmations to verify platform presence",
			"Follow up on financial indicators for asset recovery",
			"Cancel subscription services to prevent ongoing charges",
		},
	}
}

func extract(patterns []*regexp.Regexp, text string) []string {
	matches := []string{}
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			matches = append(matches, m[1])
		}
	}
	return matches
}
