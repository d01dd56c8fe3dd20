// Package registry loads the static reference tables (platforms, form
// guides, lawyer directory, state laws) from embedded seed data. The
// tables are read-only after load; callers receive copies of anything
// they could mutate. Swapping the seed files for a live data source
// later only touches this package.
package registry

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/estate-cli/internal/model"
)

//go:embed data/platforms.yaml
var platformsYAML []byte

//go:embed data/guides.yaml
var guidesYAML []byte

//go:embed data/lawyers.yaml
var lawyersYAML []byte

//go:embed data/statelaws.yaml
var stateLawsYAML []byte

// General holds the platform-independent guidance attached to the
// list-platform-options payload.
type General struct {
	GeneralRequirements []string `yaml:"general_requirements"`
	RecommendedOrder    []string `yaml:"recommended_order"`
	Tips                []string `yaml:"tips"`
}

// Registry is the loaded, immutable reference data set.
type Registry struct {
	platforms []model.Platform
	byName    map[string]model.Platform
	byDomain  map[string]model.Platform
	general   General

	guides     map[string]model.FormGuide
	guideNames []string

	lawyers   map[string][]model.Lawyer
	adjacency map[string]string

	stateLaws map[string]model.StateLaw
}

type platformsFile struct {
	Platforms []model.Platform `yaml:"platforms"`
	General   General          `yaml:",inline"`
}

type guidesFile struct {
	Guides []model.FormGuide `yaml:"guides"`
}

type lawyersFile struct {
	Areas     map[string][]model.Lawyer `yaml:"areas"`
	Adjacency map[string]string         `yaml:"adjacency"`
}

type stateLawsFile struct {
	States map[string]model.StateLaw `yaml:"states"`
}

// New parses the embedded seed data. Seed data is compiled in, so a
// parse failure is a build defect and the only error path here.
func New() (*Registry, error) {
	var pf platformsFile
	if err := yaml.Unmarshal(platformsYAML, &pf); err != nil {
		return nil, eris.Wrap(err, "registry: parse platforms")
	}
	var gf guidesFile
	if err := yaml.Unmarshal(guidesYAML, &gf); err != nil {
		return nil, eris.Wrap(err, "registry: parse guides")
	}
	var lf lawyersFile
	if err := yaml.Unmarshal(lawyersYAML, &lf); err != nil {
		return nil, eris.Wrap(err, "registry: parse lawyers")
	}
	var sf stateLawsFile
	if err := yaml.Unmarshal(stateLawsYAML, &sf); err != nil {
		return nil, eris.Wrap(err, "registry: parse state laws")
	}

	r := &Registry{
		platforms: pf.Platforms,
		byName:    make(map[string]model.Platform, len(pf.Platforms)),
		byDomain:  make(map[string]model.Platform, len(pf.Platforms)),
		general:   pf.General,
		guides:    make(map[string]model.FormGuide, len(gf.Guides)),
		lawyers:   lf.Areas,
		adjacency: lf.Adjacency,
		stateLaws: make(map[string]model.StateLaw, len(sf.States)),
	}
	for _, p := range pf.Platforms {
		r.byName[strings.ToLower(p.Name)] = p
		if p.Domain != "" {
			r.byDomain[p.Domain] = p
		}
	}
	for _, g := range gf.Guides {
		r.guides[strings.ToLower(g.Platform)] = g
		r.guideNames = append(r.guideNames, g.Platform)
	}
	sort.Strings(r.guideNames)
	for state, law := range sf.States {
		r.stateLaws[normalizeState(state)] = law
	}
	return r, nil
}

// MustNew is New for callers with compiled-in data only (tests, init).
func MustNew() *Registry {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Platform looks up a platform by display name or domain,
// case-insensitively.
func (r *Registry) Platform(name string) (model.Platform, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := r.byName[key]; ok {
		return p, true
	}
	p, ok := r.byDomain[key]
	return p, ok
}

// DefaultPlatform is the fallback entry used when a template-binding
// lookup misses the reference table.
func (r *Registry) DefaultPlatform() model.Platform {
	p, _ := r.Platform("Google")
	return p
}

// Platforms returns every platform in declaration order.
func (r *Registry) Platforms() []model.Platform {
	out := make([]model.Platform, len(r.platforms))
	copy(out, r.platforms)
	return out
}

// CommonPlatforms returns the platforms most subjects are assumed to
// hold accounts on, in declaration order.
func (r *Registry) CommonPlatforms() []model.Platform {
	var out []model.Platform
	for _, p := range r.platforms {
		if p.Common {
			out = append(out, p)
		}
	}
	return out
}

// SupportedPlatforms returns the platforms with a full recovery process
// (the ones shown by list-platform-options), in declaration order.
func (r *Registry) SupportedPlatforms() []model.Platform {
	var out []model.Platform
	for _, p := range r.platforms {
		if p.PrimaryMethod != "" {
			out = append(out, p)
		}
	}
	return out
}

// General returns the platform-independent guidance lists.
func (r *Registry) General() General { return r.general }

// FormGuide looks up form instructions by platform name. Strict: no
// default entry is substituted on a miss.
func (r *Registry) FormGuide(platform string) (model.FormGuide, bool) {
	g, ok := r.guides[strings.ToLower(strings.TrimSpace(platform))]
	return g, ok
}

// GuidePlatforms lists the platforms that have form guides, sorted.
func (r *Registry) GuidePlatforms() []string {
	out := make([]string, len(r.guideNames))
	copy(out, r.guideNames)
	return out
}

// LawyersFor returns the directory entries for a 3-digit postal area.
// The returned slice is a copy; callers may annotate it freely.
func (r *Registry) LawyersFor(prefix string) []model.Lawyer {
	src := r.lawyers[prefix]
	if len(src) == 0 {
		return nil
	}
	out := make([]model.Lawyer, len(src))
	copy(out, src)
	return out
}

// AdjacentArea maps a postal prefix with no direct entries to a
// canonical neighboring area, if one is seeded.
func (r *Registry) AdjacentArea(prefix string) (string, bool) {
	a, ok := r.adjacency[prefix]
	return a, ok
}

// StateLaw looks up a jurisdiction's digital-asset law. Misses are
// handled by the caller with a generic fallback entry.
func (r *Registry) StateLaw(state string) (model.StateLaw, bool) {
	law, ok := r.stateLaws[normalizeState(state)]
	return law, ok
}

func normalizeState(state string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(state)), " ", "_")
}
