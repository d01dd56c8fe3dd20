// Package discovery infers candidate digital accounts from sparse
// identity signals. Everything here is heuristic: scores are fixed
// per rule, not measured probabilities, and candidates are leads for
// a human to confirm.
package discovery

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/estate-cli/internal/model"
	"github.com/sells-group/estate-cli/internal/registry"
)

// Confidence assigned per rule. Domain evidence is strong, inference
// from ubiquity or context keywords progressively weaker.
const (
	confidenceDomainMatch    = 0.95
	confidenceCommonPlatform = 0.75
	confidenceBusinessNet    = 0.80
	confidencePortfolio      = 0.60
	confidenceCrypto         = 0.70
)

// highPrioritySuccessRate is the exclusive threshold above which a
// domain-matched platform is treated as a high-priority lead.
const highPrioritySuccessRate = 80

var businessKeywords = []string{"business", "company", "freelance", "consultant", "llc", "inc"}

var financialKeywords = []string{"investment", "trading", "crypto", "bitcoin", "stock", "401k"}

// Discoverer runs the asset discovery heuristic over the platform
// reference table.
type Discoverer struct {
	reg *registry.Registry
	now func() time.Time
}

func New(reg *registry.Registry) *Discoverer {
	return &Discoverer{reg: reg, now: time.Now}
}

// Discover produces a ranked list of candidate assets for the deceased.
// Rules run in a fixed order: email domain matches, then common-platform
// inference for ubiquitous services with no direct evidence, then
// keyword inference over the free-text notes. The result is sorted by
// priority tier then descending confidence, ties kept in rule order.
func (d *Discoverer) Discover(deceasedName string, emails []string, knownInfo string) model.DiscoveryReport {
	var assets []model.CandidateAsset
	seen := map[string]bool{}

	add := func(a model.CandidateAsset) {
		key := a.Platform + "|" + string(a.DiscoveryMethod)
		if seen[key] {
			return
		}
		seen[key] = true
		assets = append(assets, a)
	}

	for _, email := range emails {
		at := strings.Index(email, "@")
		if at < 0 {
			zap.L().Debug("skipping malformed email", zap.String("email", email))
			continue
		}
		domain := strings.ToLower(email[at+1:])

		for _, p := range d.reg.Platforms() {
			if p.Domain == "" || !strings.Contains(domain, p.Domain) {
				continue
			}
			priority := model.PriorityMedium
			if p.SuccessRate > highPrioritySuccessRate {
				priority = model.PriorityHigh
			}
			add(candidate(p, email, confidenceDomainMatch, model.MethodDomainMatch, priority))
		}
	}

	for _, p := range d.reg.CommonPlatforms() {
		if matchedPlatform(assets, p.Domain) {
			continue
		}
		add(candidate(p, model.UnconfirmedIdentifier, confidenceCommonPlatform, model.MethodCommonPlatform, model.PriorityMedium))
	}

	if containsAny(knownInfo, businessKeywords) {
		if p, ok := d.reg.Platform("LinkedIn"); ok {
			add(candidate(p, "Professional profile", confidenceBusinessNet, model.MethodKeyword, model.PriorityMedium))
		}
		if p, ok := d.reg.Platform("Domain Portfolio"); ok {
			add(candidate(p, "Various registrars", confidencePortfolio, model.MethodKeyword, model.PriorityMedium))
		}
	}

	if containsAny(knownInfo, financialKeywords) {
		// Exchange accounts rank high despite a poor recovery rate:
		// priority and success rate are independent axes.
		if p, ok := d.reg.Platform("Cryptocurrency Accounts"); ok {
			add(candidate(p, "Multiple exchanges possible", confidenceCrypto, model.MethodKeyword, model.PriorityHigh))
		}
	}

	sort.SliceStable(assets, func(i, j int) bool {
		if assets[i].Priority != assets[j].Priority {
			return assets[i].Priority == model.PriorityHigh
		}
		return assets[i].ConfidenceScore > assets[j].ConfidenceScore
	})

	high := 0
	for _, a := range assets {
		if a.Priority == model.PriorityHigh {
			high++
		}
	}

	return model.DiscoveryReport{
		Status:             model.StatusSuccess,
		DeceasedName:       deceasedName,
		DiscoveryDate:      d.now().UTC(),
		TotalAssets:        len(assets),
		HighPriorityAssets: high,
		Assets:             assets,
		NextSteps: []string{
			"Prepare legal documentation for high-priority assets",
			"Contact family to confirm executor status",
			"Begin recovery process for financial accounts",
			"Set up memorial accounts for social media",
		},
		TotalRecoveryTime: "60-180 days depending on platforms and legal complexity",
	}
}

func candidate(p model.Platform, identifier string, confidence float64, method model.DiscoveryMethod, priority model.Priority) model.CandidateAsset {
	return model.CandidateAsset{
		Platform:          p.Domain,
		PlatformName:      p.Name,
		Services:          p.Services,
		AccountIdentifier: identifier,
		ConfidenceScore:   confidence,
		DiscoveryMethod:   method,
		RecoveryInfo: model.RecoveryInfo{
			Timeline:          p.Timeline,
			RequiredDocuments: p.RequiredDocs,
			SuccessRate:       p.SuccessRate,
			EstimatedValue:    p.EstimatedValue,
		},
		Priority: priority,
	}
}

func matchedPlatform(assets []model.CandidateAsset, domain string) bool {
	for _, a := range assets {
		if a.Platform == domain {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
