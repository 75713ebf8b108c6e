package harness

// CaseResult records the outcome of a single addition case.
type CaseResult struct {
	Augend string `json:"augend"`
	Addend string `json:"addend"`

	// Sum is the canonical sum, when the addition succeeded.
	Sum string `json:"sum,omitempty"`

	// ErrorCode is the roman.InputErrorCode, when the addition failed.
	ErrorCode string `json:"error_code,omitempty"`

	// Pass indicates the outcome matched the case's expectation.
	Pass bool `json:"pass"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if every case matched its expectation.
	Pass bool `json:"pass"`

	// Cases contains per-case outcomes, in scenario order.
	Cases []CaseResult `json:"cases"`

	// Errors contains mismatch descriptions.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:  true,
		Cases: []CaseResult{},
	}
}

// AddError adds a mismatch description and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
