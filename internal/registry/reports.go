package registry

import (
	"fmt"

	"github.com/sells-group/estate-cli/internal/model"
)

// Options builds the list-platform-options payload: the supported
// platforms in comparison form plus the general guidance lists.
func (r *Registry) Options() model.PlatformOptionsReport {
	supported := map[string]model.PlatformOption{}
	for _, p := range r.SupportedPlatforms() {
		supported[p.Name] = model.PlatformOption{
			Services:      p.Services,
			Difficulty:    p.Difficulty,
			Timeline:      p.Timeline,
			SuccessRate:   fmt.Sprintf("%d%%", p.SuccessRate),
			PrimaryMethod: p.PrimaryMethod,
		}
	}
	return model.PlatformOptionsReport{
		Status:              model.StatusSuccess,
		SupportedPlatforms:  supported,
		GeneralRequirements: r.general.GeneralRequirements,
		RecommendedOrder:    r.general.RecommendedOrder,
		Tips:                r.general.Tips,
	}
}

// GuideReport builds the get-form-instructions payload. Lookups are
// strict: a platform without a seeded guide reports not_found along
// with the platforms that do have one.
func (r *Registry) GuideReport(platform string) model.FormGuideReport {
	g, ok := r.FormGuide(platform)
	if !ok {
		return model.FormGuideReport{
			Status:             model.StatusNotFound,
			Message:            fmt.Sprintf("Form instructions not available for %s", platform),
			AvailablePlatforms: r.GuidePlatforms(),
		}
	}
	return model.FormGuideReport{
		Status:   model.StatusSuccess,
		Platform: g.Platform,
		Guide:    &g,
		Summary: fmt.Sprintf("Complete the %s at %s. Expected processing time: %s.",
			g.FormName, g.FormURL, g.ProcessingTime),
	}
}
