package services

import (
	"context"
	"errors"
	"time"

	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/domain/providers"
	"github.com/healthmateai/healthmate/internal/domain/wizard"
	"github.com/healthmateai/healthmate/internal/infrastructure/observability"
	apperrors "github.com/healthmateai/healthmate/pkg/errors"
)

// SymptomCheckerSteps is the number of wizard steps: basic info, symptoms,
// duration, review.
const SymptomCheckerSteps = 4

// StepAction moves the symptom checker wizard.
type StepAction string

const (
	StepNext StepAction = "next"
	StepBack StepAction = "back"
	StepStay StepAction = ""
)

// SymptomSession is the state of one pass through the symptom checker.
type SymptomSession struct {
	Step   wizard.Stepper         `json:"step"`
	Intake entities.SymptomIntake `json:"intake"`
}

// NewSymptomSession returns a session on the first step.
func NewSymptomSession() SymptomSession {
	return SymptomSession{Step: wizard.New(SymptomCheckerSteps)}
}

// SymptomCheckerService drives the symptom checker wizard
type SymptomCheckerService struct {
	analyzer providers.SymptomAnalyzer
	metrics  *observability.Metrics
}

// NewSymptomCheckerService creates a new symptom checker service
func NewSymptomCheckerService(analyzer providers.SymptomAnalyzer, metrics *observability.Metrics) *SymptomCheckerService {
	return &SymptomCheckerService{analyzer: analyzer, metrics: metrics}
}

// Step applies action to the session. The step is clamped into range and
// moving never validates the intake.
func (s *SymptomCheckerService) Step(session SymptomSession, action StepAction) SymptomSession {
	step := wizard.At(session.Step.Current, SymptomCheckerSteps)
	switch action {
	case StepNext:
		step = step.Next()
	case StepBack:
		step = step.Prev()
	}
	return SymptomSession{Step: step, Intake: session.Intake.Normalized()}
}

// Analyze runs the analyzer on intake. A cancelled context abandons the
// analysis and its error is returned unwrapped.
func (s *SymptomCheckerService) Analyze(ctx context.Context, intake entities.SymptomIntake) (*entities.AnalysisResult, error) {
	ctx, span := observability.StartSpan(ctx, "SymptomCheckerService.Analyze")
	defer span.End()

	logger := observability.LoggerFromContext(ctx)
	start := time.Now()

	result, err := s.analyzer.Analyze(ctx, intake.Normalized())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			observability.RecordAnalysisDuration(ctx, s.metrics, time.Since(start), "abandoned")
			logger.Debug().Err(err).Msg("Symptom analysis abandoned")
			return nil, err
		}
		observability.RecordError(span, err)
		observability.RecordAnalysisDuration(ctx, s.metrics, time.Since(start), "error")
		return nil, apperrors.NewExternalError("symptom analysis failed", err)
	}

	observability.RecordAnalysisDuration(ctx, s.metrics, time.Since(start), "ok")
	logger.Info().
		Str("urgency", string(result.UrgencyLevel)).
		Int("conditions", len(result.PossibleConditions)).
		Dur("elapsed", time.Since(start)).
		Msg("Symptom analysis complete")
	return result, nil
}
