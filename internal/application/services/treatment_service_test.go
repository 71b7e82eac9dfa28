package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthmateai/healthmate/internal/adapters/catalog"
	"github.com/healthmateai/healthmate/internal/application/services"
	"github.com/healthmateai/healthmate/internal/domain/entities"
)

func conditions(ts []entities.Treatment) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Condition)
	}
	return out
}

func TestTreatmentService_Search(t *testing.T) {
	service := services.NewTreatmentService(catalog.MustLoad())

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"empty query with all returns everything in order", "", "all", []string{"Common Cold", "Headache", "Minor Cuts & Scrapes", "Upset Stomach"}},
		{"empty category means all", "", "", []string{"Common Cold", "Headache", "Minor Cuts & Scrapes", "Upset Stomach"}},
		{"headache matches by condition name", "headache", "all", []string{"Headache"}},
		{"match is case-insensitive", "HEADACHE", "all", []string{"Headache"}},
		{"headache within its own category", "headache", "pain", []string{"Headache"}},
		{"headache excluded by another category", "headache", "digestive", []string{}},
		{"symptom tag match", "nausea", "all", []string{"Upset Stomach"}},
		{"substring of symptom", "pain", "all", []string{"Headache", "Minor Cuts & Scrapes", "Upset Stomach"}},
		{"category only", "", "pain", []string{"Headache", "Minor Cuts & Scrapes"}},
		{"category with no entries", "", "skin", []string{}},
		{"no match", "xyznotfound", "all", []string{}},
		{"whitespace is trimmed", "  cold ", "all", []string{"Common Cold"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conditions(service.Search(tt.query, tt.category)))
		})
	}
}

func TestTreatmentService_Categories(t *testing.T) {
	service := services.NewTreatmentService(catalog.MustLoad())

	cats := service.Categories()
	assert.Len(t, cats, 6)
	assert.Equal(t, entities.CategoryAll, cats[0].ID)
	assert.Equal(t, "All Conditions", cats[0].Name)
}
