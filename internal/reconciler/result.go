package reconciler

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Marian1309/vercel-env/pkg/differ"
	"github.com/Marian1309/vercel-env/pkg/envs"
)

// Result represents the complete outcome of a sync or deletion run.
type Result struct {
	// RunID tags every log line of the run for tracing.
	RunID string

	// Environments holds per-environment outcomes, in processing order.
	Environments map[envs.Environment]*EnvironmentResult

	// Errors collects environment-level failures that prevented
	// reconciliation, such as an unreadable local file.
	Errors []error

	order []envs.Environment
}

// EnvironmentResult represents the outcome for a single environment.
type EnvironmentResult struct {
	Environment envs.Environment

	// Planned is the number of divergence records the diff produced.
	Planned int
	// Selected is the number of records the operator chose to apply.
	Selected int

	// Applied and Failed count outcomes per action kind.
	Applied map[differ.Action]int
	Failed  map[differ.Action]int

	// Failures carries the individual failed actions for reporting.
	Failures []Failure
}

// Failure captures one action that could not be applied.
type Failure struct {
	Key    string
	Action differ.Action
	Err    error
}

// NewResult creates an empty result with a fresh run ID.
func NewResult() *Result {
	return &Result{
		RunID:        uuid.NewString(),
		Environments: make(map[envs.Environment]*EnvironmentResult),
	}
}

// Environment returns the result bucket for an environment, creating it on
// first access.
func (r *Result) Environment(environment envs.Environment) *EnvironmentResult {
	if er, ok := r.Environments[environment]; ok {
		return er
	}
	er := &EnvironmentResult{
		Environment: environment,
		Applied:     make(map[differ.Action]int),
		Failed:      make(map[differ.Action]int),
	}
	r.Environments[environment] = er
	r.order = append(r.order, environment)
	return er
}

// AddError records an environment-level failure.
func (r *Result) AddError(err error) {
	if err != nil {
		r.Errors = append(r.Errors, err)
	}
}

func (r *Result) recordApplied(environment envs.Environment, action differ.Action) {
	r.Environment(environment).Applied[action]++
}

func (r *Result) recordFailure(environment envs.Environment, action differ.Action, key string, err error) {
	er := r.Environment(environment)
	er.Failed[action]++
	er.Failures = append(er.Failures, Failure{Key: key, Action: action, Err: err})
}

// AppliedCount returns the total number of successfully applied actions.
func (r *Result) AppliedCount() int {
	total := 0
	for _, er := range r.Environments {
		for _, n := range er.Applied {
			total += n
		}
	}
	return total
}

// FailureCount returns the total number of failed actions, including
// environment-level errors.
func (r *Result) FailureCount() int {
	total := len(r.Errors)
	for _, er := range r.Environments {
		for _, n := range er.Failed {
			total += n
		}
	}
	return total
}

// HasFailures reports whether anything in the run failed. Commands map this
// to a non-zero exit status.
func (r *Result) HasFailures() bool {
	return r.FailureCount() > 0
}

// HasChanges reports whether any action was applied.
func (r *Result) HasChanges() bool {
	return r.AppliedCount() > 0
}

// Summary returns a human-readable summary of the whole run.
func (r *Result) Summary() string {
	applied := r.AppliedCount()
	failed := r.FailureCount()

	if applied == 0 && failed == 0 {
		return "No changes applied"
	}

	parts := make([]string, 0, len(r.order))
	for _, environment := range r.order {
		er := r.Environments[environment]
		if er.summaryRelevant() {
			parts = append(parts, er.Summary())
		}
	}

	summary := fmt.Sprintf("%d applied, %d failed", applied, failed)
	if len(parts) > 0 {
		summary += " (" + strings.Join(parts, "; ") + ")"
	}
	return summary
}

// Summary returns a human-readable summary for the environment.
func (er *EnvironmentResult) Summary() string {
	applied, failed := er.counts()
	if applied == 0 && failed == 0 {
		return fmt.Sprintf("%s: no changes", er.Environment)
	}

	kinds := make([]string, 0, len(er.Applied))
	for _, action := range []differ.Action{
		differ.ActionAdd,
		differ.ActionUpdate,
		differ.ActionPull,
		differ.ActionRemoveRemote,
		differ.ActionRemoveLocal,
	} {
		if n := er.Applied[action]; n > 0 {
			kinds = append(kinds, fmt.Sprintf("%d %s", n, action))
		}
	}

	summary := fmt.Sprintf("%s: %d applied", er.Environment, applied)
	if len(kinds) > 0 {
		summary += " (" + strings.Join(kinds, ", ") + ")"
	}
	if failed > 0 {
		summary += fmt.Sprintf(", %d failed", failed)
	}
	return summary
}

func (er *EnvironmentResult) counts() (applied, failed int) {
	for _, n := range er.Applied {
		applied += n
	}
	for _, n := range er.Failed {
		failed += n
	}
	return applied, failed
}

func (er *EnvironmentResult) summaryRelevant() bool {
	applied, failed := er.counts()
	return applied > 0 || failed > 0
}
