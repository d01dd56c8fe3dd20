// Package directory matches users with nearby probate attorneys from
// the seeded directory.
package directory

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/estate-cli/internal/model"
	"github.com/sells-group/estate-cli/internal/registry"
)

// adjacencyPenaltyMiles is added to every distance when a query falls
// back to a neighboring postal area.
const adjacencyPenaltyMiles = 10.0

// maxResults caps the number of lawyers returned; lawyers_found still
// reports the full in-radius count.
const maxResults = 5

// DefaultRadiusMiles is used when the caller does not constrain the
// search.
const DefaultRadiusMiles = 25

// Matcher ranks candidate professionals for a postal-code query.
type Matcher struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) *Matcher {
	return &Matcher{reg: reg}
}

// Find returns up to five attorneys near the given zipcode, ranked by
// rating with nearest-first tie-breaking. The specialty argument is
// advisory only and does not filter results. Areas with no direct
// directory entry fall back to a mapped neighboring area with a fixed
// distance penalty.
func (m *Matcher) Find(zipcode string, radiusMiles int, specialty string) model.LawyerMatchReport {
	prefix := ""
	if len(zipcode) >= 3 {
		prefix = zipcode[:3]
	}

	lawyers := m.reg.LawyersFor(prefix)
	if len(lawyers) == 0 {
		if alt, ok := m.reg.AdjacentArea(prefix); ok {
			zap.L().Debug("falling back to adjacent area",
				zap.String("prefix", prefix), zap.String("adjacent", alt))
			lawyers = m.reg.LawyersFor(alt)
			for i := range lawyers {
				lawyers[i].DistanceMiles += adjacencyPenaltyMiles
			}
		}
	}

	filtered := lawyers[:0]
	for _, l := range lawyers {
		if l.DistanceMiles <= float64(radiusMiles) {
			filtered = append(filtered, l)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return rankBefore(filtered[i], filtered[j])
	})

	for i := range filtered {
		annotate(&filtered[i])
	}

	top := filtered
	if len(top) > maxResults {
		top = top[:maxResults]
	}

	return model.LawyerMatchReport{
		Status:            model.StatusSuccess,
		Zipcode:           zipcode,
		SearchRadiusMiles: radiusMiles,
		LawyersFound:      len(filtered),
		Lawyers:           top,
		SearchTips: []string{
			"Contact 2-3 lawyers for consultations to find the best fit",
			"Ask about experience with digital asset recovery",
			"Inquire about flat fee vs hourly billing options",
			"Verify state bar membership and any specializations",
		},
		QuestionsToAsk: []string{
			"What is your experience with digital estate recovery?",
			"Do you handle platform-specific recovery requests?",
			"What are your fees for probate administration?",
			"Can you assist with out-of-state digital assets?",
			"What is your typical timeline for probate completion?",
		},
		AverageConsultFee: averageFee(filtered),
		Disclaimer:        "This is a simulated list. In production, verify all lawyer credentials through state bar associations.",
	}
}

// rankBefore orders by rating descending; among equal ratings the
// nearer attorney ranks first.
func rankBefore(a, b model.Lawyer) bool {
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	return a.DistanceMiles < b.DistanceMiles
}

func annotate(l *model.Lawyer) {
	switch {
	case l.Rating >= 4.8:
		l.TypicalResponseTime = "Same day"
	case l.Rating >= 4.5:
		l.TypicalResponseTime = "1-2 business days"
	default:
		l.TypicalResponseTime = "2-3 business days"
	}

	l.EmergencyAvailable = l.YearsExperience > 15

	switch {
	case hasSpecialty(l, "digital assets") || hasSpecialty(l, "cryptocurrency"):
		l.DigitalEstateExpertise = "Expert"
	case l.YearsExperience > 20:
		l.DigitalEstateExpertise = "Experienced"
	default:
		l.DigitalEstateExpertise = "Familiar"
	}
}

func hasSpecialty(l *model.Lawyer, specialty string) bool {
	for _, s := range l.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// averageFee reports the truncated mean of numeric consultation fees.
// Free consultations and non-numeric entries are excluded; with no
// numeric fee present the sentinel is returned.
func averageFee(lawyers []model.Lawyer) string {
	var fees []int
	for _, l := range lawyers {
		fee := l.ConsultationFee
		if !strings.Contains(fee, "$") || strings.Contains(fee, "Free") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(fee, "$", ""))
		if len(fields) == 0 {
			continue
		}
		amount, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		fees = append(fees, amount)
	}

	if len(fees) == 0 {
		return model.VariesFee
	}
	sum := 0
	for _, f := range fees {
		sum += f
	}
	return "$" + strconv.Itoa(sum/len(fees))
}
