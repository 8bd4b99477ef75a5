package probe

import (
	"fmt"

	"github.com/google/cel-go/cel"
	celtypes "github.com/google/cel-go/common/types"
)

// Observation is what a scenario saw after sending its request.
type Observation struct {
	StatusCode int  `json:"statusCode"`
	Confirmed  bool `json:"confirmed"`
	Canceled   bool `json:"canceled"`
}

// Expectation is a compiled pass condition over an Observation.
type Expectation struct {
	source string
	prg    cel.Program
}

// CompileExpectation compiles a CEL condition that may reference
// status (int), confirmed (bool) and canceled (bool). It must evaluate to bool.
func CompileExpectation(condition string) (*Expectation, error) {
	env, err := cel.NewEnv(
		cel.Variable("status", cel.IntType),
		cel.Variable("confirmed", cel.BoolType),
		cel.Variable("canceled", cel.BoolType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	ast, issues := env.Compile(condition)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("output type is not bool: %s", ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to program CEL expression: %w", err)
	}
	return &Expectation{source: condition, prg: prg}, nil
}

// MustCompileExpectation is like CompileExpectation but panics on error.
func MustCompileExpectation(condition string) *Expectation {
	exp, err := CompileExpectation(condition)
	if err != nil {
		panic(fmt.Sprintf("invalid expectation %q: %v", condition, err))
	}
	return exp
}

// String returns the CEL source of the expectation.
func (e *Expectation) String() string {
	return e.source
}

// Evaluate reports whether the observation satisfies the expectation.
func (e *Expectation) Evaluate(obs Observation) (bool, error) {
	vars := map[string]any{
		"status":    int64(obs.StatusCode),
		"confirmed": obs.Confirmed,
		"canceled":  obs.Canceled,
	}
	out, _, err := e.prg.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate CEL condition: %w", err)
	}
	return out.Type() == celtypes.BoolType && out.Value() == true, nil
}
