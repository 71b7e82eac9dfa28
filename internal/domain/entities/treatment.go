package entities

import "slices"

// CategoryAll is the wildcard treatment category.
const CategoryAll = "all"

// TreatmentCategory groups treatments for the category selector.
type TreatmentCategory struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// TreatmentGroup is a titled list of care actions.
type TreatmentGroup struct {
	Type    string   `json:"type" yaml:"type"`
	Actions []string `json:"actions" yaml:"actions"`
}

// Treatment is self-care guidance for a common condition.
type Treatment struct {
	ID         int              `json:"id" yaml:"id"`
	Condition  string           `json:"condition" yaml:"condition"`
	Category   string           `json:"category" yaml:"category"`
	Severity   string           `json:"severity" yaml:"severity"`
	Symptoms   []string         `json:"symptoms" yaml:"symptoms"`
	Groups     []TreatmentGroup `json:"treatments" yaml:"treatments"`
	WhenToSeek string           `json:"when_to_seek" yaml:"when_to_seek"`
	Duration   string           `json:"duration" yaml:"duration"`
}

// Clone returns a copy of t that shares no memory with it.
func (t Treatment) Clone() Treatment {
	t.Symptoms = slices.Clone(t.Symptoms)
	if t.Groups != nil {
		groups := make([]TreatmentGroup, len(t.Groups))
		for i, g := range t.Groups {
			g.Actions = slices.Clone(g.Actions)
			groups[i] = g
		}
		t.Groups = groups
	}
	return t
}
