package providers

import (
	"context"

	"github.com/healthmateai/healthmate/internal/domain/entities"
)

// SymptomAnalyzer turns a completed intake into an analysis. Implementations
// must honour ctx cancellation; a cancelled analysis is abandoned.
type SymptomAnalyzer interface {
	Analyze(ctx context.Context, intake entities.SymptomIntake) (*entities.AnalysisResult, error)
}
