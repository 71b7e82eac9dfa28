package services

import (
	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/domain/repositories"
)

// DashboardView is the dashboard with the tab being shown.
type DashboardView struct {
	entities.Dashboard
	ActiveTab string `json:"active_tab"`
}

// ContentService serves the static pages
type ContentService struct {
	catalog repositories.CatalogRepository
}

// NewContentService creates a new content service
func NewContentService(catalog repositories.CatalogRepository) *ContentService {
	return &ContentService{catalog: catalog}
}

func (s *ContentService) Navigation() []entities.NavItem { return s.catalog.Navigation() }
func (s *ContentService) Home() entities.HomePage { return s.catalog.Home() }
func (s *ContentService) About() entities.AboutPage { return s.catalog.About() }
func (s *ContentService) Testimonials() entities.TestimonialsPage { return s.catalog.Testimonials() }
func (s *ContentService) ContactPage() entities.ContactPage { return s.catalog.Contact() }
func (s *ContentService) PrivacyPolicy() entities.PrivacyPolicy { return s.catalog.PrivacyPolicy() }
func (s *ContentService) FAQs() []entities.FAQ { return s.catalog.Contact().FAQs }

// Dashboard returns the dashboard on tab, falling back to the overview for
// unknown tabs.
func (s *ContentService) Dashboard(tab string) DashboardView {
	d := s.catalog.Dashboard()
	if !d.HasTab(tab) {
		tab = entities.DashboardTabOverview
	}
	return DashboardView{Dashboard: d, ActiveTab: tab}
}
