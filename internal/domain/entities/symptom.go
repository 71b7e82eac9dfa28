package entities

import "strings"

// Severity is how strongly the visitor feels the symptoms.
type Severity string

const (
	SeverityMild       Severity = "mild"
	SeverityModerate   Severity = "moderate"
	SeveritySevere     Severity = "severe"
	SeverityVerySevere Severity = "very-severe"
)

// SymptomDuration is how long the symptoms have lasted.
type SymptomDuration string

const (
	DurationFewHours    SymptomDuration = "few-hours"
	DurationOneDay      SymptomDuration = "1-day"
	DurationTwoThree    SymptomDuration = "2-3-days"
	DurationOneWeek     SymptomDuration = "1-week"
	DurationFewWeeks    SymptomDuration = "few-weeks"
	DurationMonthOrMore SymptomDuration = "month-or-more"
)

// Option is a value/label pair for a select box.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// SeverityOptions lists the severity choices in display order.
var SeverityOptions = []Option{
	{Value: string(SeverityMild), Label: "Mild - Minor discomfort"},
	{Value: string(SeverityModerate), Label: "Moderate - Noticeable discomfort"},
	{Value: string(SeveritySevere), Label: "Severe - Significant discomfort"},
	{Value: string(SeverityVerySevere), Label: "Very Severe - Debilitating"},
}

// DurationOptions lists the duration choices in display order.
var DurationOptions = []Option{
	{Value: string(DurationFewHours), Label: "A few hours"},
	{Value: string(DurationOneDay), Label: "1 day"},
	{Value: string(DurationTwoThree), Label: "2-3 days"},
	{Value: string(DurationOneWeek), Label: "About a week"},
	{Value: string(DurationFewWeeks), Label: "A few weeks"},
	{Value: string(DurationMonthOrMore), Label: "A month or more"},
}

// GenderOptions lists the gender choices in display order.
var GenderOptions = []Option{
	{Value: "male", Label: "Male"},
	{Value: "female", Label: "Female"},
	{Value: "other", Label: "Other"},
	{Value: "prefer-not-to-say", Label: "Prefer not to say"},
}

// SymptomIntake is the data collected across the symptom checker steps.
type SymptomIntake struct {
	Age            string          `json:"age"`
	Gender         string          `json:"gender"`
	Symptoms       string          `json:"symptoms"`
	Severity       Severity        `json:"severity"`
	Duration       SymptomDuration `json:"duration"`
	AdditionalInfo string          `json:"additional_info"`
}

// Normalized trims free-text fields and drops enum values that are not
// one of the known options.
func (i SymptomIntake) Normalized() SymptomIntake {
	i.Age = strings.TrimSpace(i.Age)
	i.Gender = strings.TrimSpace(i.Gender)
	i.Symptoms = strings.TrimSpace(i.Symptoms)
	i.AdditionalInfo = strings.TrimSpace(i.AdditionalInfo)
	if !knownOption(SeverityOptions, string(i.Severity)) {
		i.Severity = ""
	}
	if !knownOption(DurationOptions, string(i.Duration)) {
		i.Duration = ""
	}
	if !knownOption(GenderOptions, i.Gender) {
		i.Gender = ""
	}
	return i
}

func knownOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// UrgencyLevel grades how soon care should be sought.
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "Low"
	UrgencyModerate UrgencyLevel = "Moderate"
	UrgencyHigh     UrgencyLevel = "High"
)

// ConditionGuess is one candidate condition in an analysis.
type ConditionGuess struct {
	Name            string   `json:"name" yaml:"name"`
	Probability     int      `json:"probability" yaml:"probability"`
	Description     string   `json:"description" yaml:"description"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// AnalysisResult is the outcome of a symptom analysis.
type AnalysisResult struct {
	UrgencyLevel       UrgencyLevel     `json:"urgency_level" yaml:"urgency_level"`
	PossibleConditions []ConditionGuess `json:"possible_conditions" yaml:"possible_conditions"`
	NextSteps          []string         `json:"next_steps" yaml:"next_steps"`
}
