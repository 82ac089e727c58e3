package flyer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidSpec = errors.New("invalid flyer spec")

var slugPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

const (
	SiteURL          = "https://ai-village-agents.github.io/park-cleanup-site/"
	IssueSFURL       = "https://github.com/ai-village-agents/park-cleanups/issues/3"
	IssueNYCURL      = "https://github.com/ai-village-agents/park-cleanups/issues/1"
	projectSiteLabel = "Project site"
)

// Spec describes one flyer: its headline text and the QR code targets.
// The secondary QR block is only drawn when both SecondaryURL and
// SecondaryLabel are set.
type Spec struct {
	Slug           string `mapstructure:"slug"`
	Title          string `mapstructure:"title"`
	Subtitle       string `mapstructure:"subtitle"`
	PrimaryURL     string `mapstructure:"primary_url"`
	PrimaryLabel   string `mapstructure:"primary_label"`
	SecondaryURL   string `mapstructure:"secondary_url"`
	SecondaryLabel string `mapstructure:"secondary_label"`
}

func (s Spec) Validate() error {
	required := []struct{ key, val string }{
		{"slug", s.Slug},
		{"title", s.Title},
		{"subtitle", s.Subtitle},
		{"primary_url", s.PrimaryURL},
		{"primary_label", s.PrimaryLabel},
	}
	for _, f := range required {
		if strings.TrimSpace(f.val) == "" {
			return fmt.Errorf("%w: %s must not be empty (slug=%q)", ErrInvalidSpec, f.key, s.Slug)
		}
	}
	if !slugPattern.MatchString(s.Slug) {
		return fmt.Errorf("%w: slug %q must match %s", ErrInvalidSpec, s.Slug, slugPattern)
	}
	return nil
}

func (s Spec) HasSecondary() bool {
	return s.SecondaryURL != "" && s.SecondaryLabel != ""
}

// baseName is the output file name without extension, e.g. flyer_general_letter.
func (s Spec) baseName(p Page) string {
	return "flyer_" + s.Slug + "_" + p.Name
}

// DefaultSpecs returns the general flyer and the two per-park flyers.
func DefaultSpecs() []Spec {
	return []Spec{
		{
			Slug:           "general",
			Title:          "AI Village Park Cleanup",
			Subtitle:       "We need human volunteers in SF + NYC",
			PrimaryURL:     SiteURL,
			PrimaryLabel:   "Start here",
			SecondaryURL:   IssueSFURL,
			SecondaryLabel: "Volunteer (SF)",
		},
		{
			Slug:           "mission_dolores",
			Title:          "Mission Dolores Park Cleanup",
			Subtitle:       "San Francisco (Dolores St & 19th St)",
			PrimaryURL:     IssueSFURL,
			PrimaryLabel:   "Claim Mission Dolores",
			SecondaryURL:   SiteURL,
			SecondaryLabel: projectSiteLabel,
		},
		{
			Slug:           "devoe_park",
			Title:          "Devoe Park Cleanup",
			Subtitle:       "Bronx, NYC (W 188th St & University Ave)",
			PrimaryURL:     IssueNYCURL,
			PrimaryLabel:   "Claim Devoe Park",
			SecondaryURL:   SiteURL,
			SecondaryLabel: projectSiteLabel,
		},
	}
}

// Select filters specs down to the given slugs, keeping spec order.
// An empty slug list selects everything.
func Select(specs []Spec, slugs []string) ([]Spec, error) {
	if len(slugs) == 0 {
		return specs, nil
	}
	want := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		want[strings.TrimSpace(s)] = false
	}
	var out []Spec
	for _, s := range specs {
		if _, ok := want[s.Slug]; ok {
			want[s.Slug] = true
			out = append(out, s)
		}
	}
	for _, slug := range slugs {
		if slug = strings.TrimSpace(slug); !want[slug] {
			return nil, fmt.Errorf("%w: unknown slug %q", ErrInvalidSpec, slug)
		}
	}
	return out, nil
}
