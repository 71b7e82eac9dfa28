package services

import (
	"strings"

	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/domain/repositories"
)

// TreatmentService filters the self-care guides
type TreatmentService struct {
	catalog repositories.CatalogRepository
}

// NewTreatmentService creates a new treatment service
func NewTreatmentService(catalog repositories.CatalogRepository) *TreatmentService {
	return &TreatmentService{catalog: catalog}
}

// Categories returns the category selector options
func (s *TreatmentService) Categories() []entities.TreatmentCategory {
	return s.catalog.TreatmentCategories()
}

// Search returns, in catalog order, the treatments whose condition or any
// symptom contains query case-insensitively and whose category matches.
// An empty query matches everything; an empty or "all" category matches
// every category.
func (s *TreatmentService) Search(query, category string) []entities.Treatment {
	needle := strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)
	if category == "" {
		category = entities.CategoryAll
	}

	all := s.catalog.Treatments()
	results := make([]entities.Treatment, 0, len(all))
	for _, t := range all {
		if category != entities.CategoryAll && t.Category != category {
			continue
		}
		if matchesQuery(t, needle) {
			results = append(results, t)
		}
	}
	return results
}

func matchesQuery(t entities.Treatment, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Condition), needle) {
		return true
	}
	for _, symptom := range t.Symptoms {
		if strings.Contains(strings.ToLower(symptom), needle) {
			return true
		}
	}
	return false
}
