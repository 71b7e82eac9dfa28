package analysis

import (
	"context"
	"time"

	"github.com/healthmateai/healthmate/internal/domain/entities"
	"github.com/healthmateai/healthmate/internal/domain/providers"
)

// ResultSource supplies the fixed analysis result.
type ResultSource interface {
	CannedAnalysis() entities.AnalysisResult
}

// CannedAnalyzer simulates a symptom analysis: it waits for the configured
// delay and returns the same result for every intake.
type CannedAnalyzer struct {
	source ResultSource
	delay  time.Duration
}

// NewCannedAnalyzer creates a simulated analyzer.
func NewCannedAnalyzer(source ResultSource, delay time.Duration) providers.SymptomAnalyzer {
	return &CannedAnalyzer{source: source, delay: delay}
}

// Analyze ignores the intake. If ctx ends before the delay elapses the
// analysis is abandoned and ctx.Err() is returned.
func (a *CannedAnalyzer) Analyze(ctx context.Context, _ entities.SymptomIntake) (*entities.AnalysisResult, error) {
	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := a.source.CannedAnalysis()
	return &result, nil
}
