package entities

import "slices"

// NavItem is a link in the navigation bar.
type NavItem struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Feature is an icon/title/description card.
type Feature struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Stat is a headline number with a label.
type Stat struct {
	Number string `json:"number" yaml:"number"`
	Label  string `json:"label" yaml:"label"`
}

// TeamMember is a person on the about page.
type TeamMember struct {
	Name        string `json:"name" yaml:"name"`
	Role        string `json:"role" yaml:"role"`
	Avatar      string `json:"avatar" yaml:"avatar"`
	Credentials string `json:"credentials" yaml:"credentials"`
}

// Testimonial is a user quote.
type Testimonial struct {
	Name      string `json:"name" yaml:"name"`
	Location  string `json:"location" yaml:"location"`
	Rating    int    `json:"rating" yaml:"rating"`
	Title     string `json:"title" yaml:"title"`
	Content   string `json:"content" yaml:"content"`
	Condition string `json:"condition" yaml:"condition"`
	Avatar    string `json:"avatar" yaml:"avatar"`
}

// FAQ is a frequently asked question.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// PrivacySubsection is a titled bullet list inside a policy section.
type PrivacySubsection struct {
	Subtitle string   `json:"subtitle" yaml:"subtitle"`
	Items    []string `json:"items" yaml:"items"`
}

// PrivacySection is a section of the privacy policy.
type PrivacySection struct {
	Icon    string              `json:"icon" yaml:"icon"`
	Title   string              `json:"title" yaml:"title"`
	Content []PrivacySubsection `json:"content" yaml:"content"`
}

// UserRight is a data-subject right listed in the privacy policy.
type UserRight struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// PrivacyPolicy is the full policy page.
type PrivacyPolicy struct {
	LastUpdated string           `json:"last_updated" yaml:"last_updated"`
	Sections    []PrivacySection `json:"sections" yaml:"sections"`
	UserRights  []UserRight      `json:"user_rights" yaml:"user_rights"`
	// Body is the trailing prose rendered from Markdown.
	Body string `json:"body_html" yaml:"-"`
}

// HomePage is the landing page content.
type HomePage struct {
	Features []Feature `json:"features" yaml:"features"`
	Stats    []Stat    `json:"stats" yaml:"stats"`
}

// AboutPage is the about page content.
type AboutPage struct {
	Values     []Feature    `json:"values" yaml:"values"`
	Team       []TeamMember `json:"team" yaml:"team"`
	Stats      []Stat       `json:"stats" yaml:"stats"`
	Highlights []string     `json:"highlights" yaml:"highlights"`
	// Mission is rendered from Markdown.
	Mission string `json:"mission_html" yaml:"-"`
}

// TestimonialsPage is the testimonials page content.
type TestimonialsPage struct {
	Testimonials []Testimonial `json:"testimonials" yaml:"testimonials"`
	Stats        []Stat        `json:"stats" yaml:"stats"`
}

// ContactPage is the static part of the contact page.
type ContactPage struct {
	Channels   []ContactChannel `json:"channels" yaml:"channels"`
	Categories []Option         `json:"categories" yaml:"categories"`
	Features   []Feature        `json:"features" yaml:"features"`
	FAQs       []FAQ            `json:"faqs" yaml:"faqs"`
}

// Clone returns a copy of p that shares no memory with it.
func (p PrivacyPolicy) Clone() PrivacyPolicy {
	if p.Sections != nil {
		sections := make([]PrivacySection, len(p.Sections))
		for i, sec := range p.Sections {
			if sec.Content != nil {
				content := make([]PrivacySubsection, len(sec.Content))
				for j, sub := range sec.Content {
					sub.Items = slices.Clone(sub.Items)
					content[j] = sub
				}
				sec.Content = content
			}
			sections[i] = sec
		}
		p.Sections = sections
	}
	p.UserRights = slices.Clone(p.UserRights)
	return p
}

func (h HomePage) Clone() HomePage {
	h.Features = slices.Clone(h.Features)
	h.Stats = slices.Clone(h.Stats)
	return h
}

func (a AboutPage) Clone() AboutPage {
	a.Values = slices.Clone(a.Values)
	a.Team = slices.Clone(a.Team)
	a.Stats = slices.Clone(a.Stats)
	a.Highlights = slices.Clone(a.Highlights)
	return a
}

func (t TestimonialsPage) Clone() TestimonialsPage {
	t.Testimonials = slices.Clone(t.Testimonials)
	t.Stats = slices.Clone(t.Stats)
	return t
}

func (c ContactPage) Clone() ContactPage {
	c.Channels = slices.Clone(c.Channels)
	c.Categories = slices.Clone(c.Categories)
	c.Features = slices.Clone(c.Features)
	c.FAQs = slices.Clone(c.FAQs)
	return c
}
