// Package catalog serves the site's static content from YAML and Markdown
// files embedded in the binary.
package catalog

import (
	"embed"
	"fmt"
	"slices"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"gopkg.in/yaml.v3"

	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/domain/repositories"
	apperrors "github.com/healthmateai/healthmate/pkg/errors"
)

//go:embed data/*.yaml content/*.md
var files embed.FS

type directoryFile struct {
	Doctors          []entities.Doctor          `yaml:"doctors"`
	AppointmentTypes []entities.AppointmentType `yaml:"appointment_types"`
	DefaultTimeSlots []string                   `yaml:"default_time_slots"`
	Insurance        []entities.Option          `yaml:"insurance"`
}

type treatmentsFile struct {
	Categories []entities.TreatmentCategory `yaml:"categories"`
	Treatments []entities.Treatment         `yaml:"treatments"`
}

type siteFile struct {
	Navigation   []entities.NavItem        `yaml:"navigation"`
	Home         entities.HomePage         `yaml:"home"`
	About        entities.AboutPage        `yaml:"about"`
	Testimonials entities.TestimonialsPage `yaml:"testimonials"`
	Contact      entities.ContactPage      `yaml:"contact"`
	Dashboard    entities.Dashboard        `yaml:"dashboard"`
	Privacy      entities.PrivacyPolicy    `yaml:"privacy"`
}

// Catalog is the in-memory content store. It is immutable after Load and
// safe for concurrent use.
type Catalog struct {
	directory  directoryFile
	treatments treatmentsFile
	site       siteFile
	analysis   entities.AnalysisResult
}

var _ repositories.CatalogRepository = (*Catalog)(nil)

// Load parses the embedded content files.
func Load() (*Catalog, error) {
	c := &Catalog{}

	if err := decode("data/directory.yaml", &c.directory); err != nil {
		return nil, err
	}
	if err := decode("data/treatments.yaml", &c.treatments); err != nil {
		return nil, err
	}
	if err := decode("data/site.yaml", &c.site); err != nil {
		return nil, err
	}
	if err := decode("data/analysis.yaml", &c.analysis); err != nil {
		return nil, err
	}

	mission, err := renderMarkdown("content/about_mission.md")
	if err != nil {
		return nil, err
	}
	c.site.About.Mission = mission

	privacy, err := renderMarkdown("content/privacy_policy.md")
	if err != nil {
		return nil, err
	}
	c.site.Privacy.Body = privacy

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustLoad is Load for program start-up; it panics on malformed content.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func decode(name string, out interface{}) error {
	data, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func renderMarkdown(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	// parsers carry state and cannot be reused across documents
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML(data, p, r)), nil
}

func (c *Catalog) validate() error {
	if len(c.directory.Doctors) == 0 {
		return fmt.Errorf("catalog: no doctors defined")
	}
	if len(c.directory.AppointmentTypes) == 0 {
		return fmt.Errorf("catalog: no appointment types defined")
	}
	seen := make(map[int]bool, len(c.directory.Doctors))
	for _, d := range c.directory.Doctors {
		if seen[d.ID] {
			return fmt.Errorf("catalog: duplicate doctor id %d", d.ID)
		}
		seen[d.ID] = true
	}
	if len(c.treatments.Categories) == 0 || c.treatments.Categories[0].ID != entities.CategoryAll {
		return fmt.Errorf("catalog: treatment categories must start with %q", entities.CategoryAll)
	}
	if !c.site.Dashboard.HasTab(entities.DashboardTabOverview) {
		return fmt.Errorf("catalog: dashboard has no %q tab", entities.DashboardTabOverview)
	}
	return nil
}

func (c *Catalog) Navigation() []entities.NavItem {
	return slices.Clone(c.site.Navigation)
}

func (c *Catalog) Doctors() []entities.Doctor {
	out := make([]entities.Doctor, len(c.directory.Doctors))
	for i, d := range c.directory.Doctors {
		out[i] = d.Clone()
	}
	return out
}

// DoctorByID looks a doctor up by id.
func (c *Catalog) DoctorByID(id int) (*entities.Doctor, error) {
	for i := range c.directory.Doctors {
		if c.directory.Doctors[i].ID == id {
			d := c.directory.Doctors[i].Clone()
			return &d, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("doctor %d not found", id))
}

func (c *Catalog) AppointmentTypes() []entities.AppointmentType {
	return slices.Clone(c.directory.AppointmentTypes)
}

// AppointmentTypeByID looks an appointment type up by id.
func (c *Catalog) AppointmentTypeByID(id string) (*entities.AppointmentType, error) {
	for _, t := range c.directory.AppointmentTypes {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("appointment type %q not found", id))
}

func (c *Catalog) DefaultTimeSlots() []string {
	return slices.Clone(c.directory.DefaultTimeSlots)
}

func (c *Catalog) InsuranceOptions() []entities.Option {
	return slices.Clone(c.directory.Insurance)
}

func (c *Catalog) Treatments() []entities.Treatment {
	out := make([]entities.Treatment, len(c.treatments.Treatments))
	for i, t := range c.treatments.Treatments {
		out[i] = t.Clone()
	}
	return out
}

func (c *Catalog) TreatmentCategories() []entities.TreatmentCategory {
	return slices.Clone(c.treatments.Categories)
}

// CannedAnalysis returns a deep copy of the fixed analysis so callers may
// annotate it freely.
func (c *Catalog) CannedAnalysis() entities.AnalysisResult {
	out := c.analysis
	out.PossibleConditions = make([]entities.ConditionGuess, len(c.analysis.PossibleConditions))
	for i, g := range c.analysis.PossibleConditions {
		g.Recommendations = slices.Clone(g.Recommendations)
		out.PossibleConditions[i] = g
	}
	out.NextSteps = slices.Clone(c.analysis.NextSteps)
	return out
}

// Page accessors return deep copies; callers may modify them freely.

func (c *Catalog) Home() entities.HomePage { return c.site.Home.Clone() }
func (c *Catalog) About() entities.AboutPage { return c.site.About.Clone() }
func (c *Catalog) Testimonials() entities.TestimonialsPage { return c.site.Testimonials.Clone() }
func (c *Catalog) Contact() entities.ContactPage { return c.site.Contact.Clone() }
func (c *Catalog) PrivacyPolicy() entities.PrivacyPolicy { return c.site.Privacy.Clone() }
func (c *Catalog) Dashboard() entities.Dashboard { return c.site.Dashboard.Clone() }
