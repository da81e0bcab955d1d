package model

// EvaluationOutcome tags whether the evaluator produced a real result or the
// caller should fall back to self-assessment.
type EvaluationOutcome string

const (
	EvaluationAvailable   EvaluationOutcome = "available"
	EvaluationUnavailable EvaluationOutcome = "unavailable"
)

// Evaluation is a tagged result: exactly one of Result or FallbackHint is
// meaningful, selected by Outcome.
type Evaluation struct {
	Outcome      EvaluationOutcome `json:"outcome"`
	Result       *EvaluationData   `json:"result,omitempty"`
	FallbackHint string            `json:"fallback_hint,omitempty"`
}

// EvaluationData is the evaluator's verdict on a learner's answer.
type EvaluationData struct {
	Correct     bool     `json:"correct"`
	Score       float64  `json:"score"`
	Feedback    string   `json:"feedback"`
	Corrections []string `json:"corrections,omitempty"`
}

func AvailableEvaluation(data EvaluationData) Evaluation {
	return Evaluation{Outcome: EvaluationAvailable, Result: &data}
}

func UnavailableEvaluation(hint string) Evaluation {
	return Evaluation{Outcome: EvaluationUnavailable, FallbackHint: hint}
}
