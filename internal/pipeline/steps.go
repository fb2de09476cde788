package pipeline

// Step names reported in progress events.
const (
	StepValidate    = "validate"
	StepCorrector   = "corrector"
	StepFeatures    = "features"
	StepConnectives = "connectives"
	StepScoring     = "scoring"
	StepFeedback    = "feedback"
	StepReport      = "report"
)

// Step categories.
const (
	CategoryInput    = "input"
	CategoryAnalysis = "analysis"
	CategoryScoring  = "scoring"
	CategoryOutput   = "output"
)

// StepDefinition describes one analysis stage.
type StepDefinition struct {
	Name     string
	Category string
}

// Steps lists the stages in execution order.
var Steps = []StepDefinition{
	{Name: StepValidate, Category: CategoryInput},
	{Name: StepCorrector, Category: CategoryAnalysis},
	{Name: StepFeatures, Category: CategoryAnalysis},
	{Name: StepConnectives, Category: CategoryAnalysis},
	{Name: StepScoring, Category: CategoryScoring},
	{Name: StepFeedback, Category: CategoryScoring},
	{Name: StepReport, Category: CategoryOutput},
}

// CategoryOf returns the category of a step, or "" for an unknown step.
func CategoryOf(step string) string {
	for _, s := range Steps {
		if s.Name == step {
			return s.Category
		}
	}
	return ""
}
