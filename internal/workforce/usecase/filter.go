package usecase

import (
	"encoding/json"
	"fmt"

	apperrors "workforce-api/internal/shared/errors"

	"github.com/google/cel-go/cel"
)

// ListFilter evaluates a CEL expression against documents, one variable per
// entity kind (e.g. `employee.salary > 50000 && "go" in employee.tags`).
// Documents are presented to CEL as plain maps, so timestamps appear as
// RFC 3339 strings.
type ListFilter struct {
	varName string
	program cel.Program
}

// NewListFilter compiles a CEL expression that must evaluate to a boolean.
func NewListFilter(varName, expr string) (*ListFilter, error) {
	celEnv, err := cel.NewEnv(
		cel.Variable(varName, cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create filter environment").WithCause(err)
	}

	ast, issues := celEnv.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("invalid filter expression: %v", issues.Err()))
	}

	program, err := celEnv.Program(ast)
	if err != nil {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("invalid filter expression: %v", err))
	}

	return &ListFilter{varName: varName, program: program}, nil
}

// Match evaluates the filter against one document.
func (f *ListFilter) Match(doc map[string]interface{}) (bool, error) {
	out, _, err := f.program.Eval(map[string]interface{}{f.varName: doc})
	if err != nil {
		return false, apperrors.NewValidationError(
			fmt.Sprintf("filter evaluation failed: %v", err))
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, apperrors.NewValidationError("filter expression must evaluate to a boolean")
	}
	return matched, nil
}

// toDocument converts a typed model value into the map shape consumed by the
// filter and carried on change events. Round-tripping through JSON keeps the
// wire field names.
func toDocument(v interface{}) map[string]interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return doc
}
