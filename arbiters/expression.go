package arbiters

import (
	"context"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/latticeconf/coordinate/spi"
)

// Expression arbitrates by compiling and running an expr-lang/expr
// program against each candidate in turn, selecting the first one for
// which the expression evaluates to true. This lets tie-breaking policy
// ("prefer the provider named 'vault' when region == 'west'") live in
// configuration instead of Go code.
//
// The expression environment exposes:
//
//	source        - string, the evaluated candidate's ProviderID
//	authoritative - bool
//	specificity   - int
//	coordinates   - map[string]string
//	caller        - map[string]string, the caller's coordinates
//	name          - string, the property name being resolved
type Expression struct {
	expression string
	program    *vm.Program
}

// NewExpression compiles expression once, returning an error immediately
// if it does not compile, rather than deferring the failure to the first
// Arbitrate call.
func NewExpression(expression string) (*Expression, error) {
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("coordinate/arbiters: compiling expression: %w", err)
	}
	return &Expression{expression: expression, program: program}, nil
}

func (e *Expression) Arbitrate(ctx context.Context, callerCoordinates spi.Coordinates, name string, candidates []spi.Value) (*spi.Value, error) {
	for i := range candidates {
		c := candidates[i]
		env := map[string]any{
			"source":        string(c.Source()),
			"authoritative": c.Authoritative(),
			"specificity":   c.EffectiveSpecificity(),
			"coordinates":   map[string]string(c.Coordinates()),
			"caller":        map[string]string(callerCoordinates),
			"name":          name,
		}
		result, err := expr.Run(e.program, env)
		if err != nil {
			return nil, fmt.Errorf("coordinate/arbiters: running expression %q: %w", e.expression, err)
		}
		if matched, ok := result.(bool); ok && matched {
			return &c, nil
		}
	}
	return nil, nil
}
