package recognizer

import "fmt"

// RecursionLimitError is returned if a run exceeds the maximum recursion depth.
type RecursionLimitError struct {
	Limit int
	Goal  string // the goal which would have exceeded the limit
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("recursion limit of %d exceeded at %s", e.Limit, e.Goal)
}

// BudgetExceededError is returned if a run needs more recognition steps than
// its budget allows.
type BudgetExceededError struct {
	Budget int64
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("budget of %d recognition steps exhausted", e.Budget)
}
