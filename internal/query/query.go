// Package query compiles jq filter text and evaluates compiled programs
// against document values.
//
// Evaluation is a pull: gojq hands back one output at a time, and a run can
// legitimately yield zero, one, or many values before either exhausting the
// stream, raising an error, or hitting the output cap. Whatever was produced
// before an error or the cap is kept, never discarded.
package query

import (
	"errors"
	"fmt"

	"github.com/itchyny/gojq"

	"github.com/oakwood-commons/jex/pkg/document"
)

// DefaultOutputCap bounds the number of outputs a single run may produce,
// guarding against unbounded generators like `repeat(.)`.
const DefaultOutputCap = 10000

// CompileError describes a syntax problem in filter text.
type CompileError struct {
	Message string
	// Offset is the byte position of the offending token in the source,
	// or -1 when the parser did not report one.
	Offset int
}

func (e *CompileError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("compile error at offset %d: %s", e.Offset, e.Message)
	}
	return "compile error: " + e.Message
}

// RunError is an error the filter raised partway through evaluation.
type RunError struct {
	Message string
}

func (e *RunError) Error() string { return e.Message }

// Outcome reports how a run ended when it did not end cleanly.
type Outcome struct {
	Err       *RunError
	Truncated bool
}

// OK reports a clean, complete evaluation.
func (o Outcome) OK() bool { return o.Err == nil && !o.Truncated }

// Program is a compiled filter, reusable across runs.
type Program struct {
	Source string
	code   *gojq.Code
}

// Compile parses and compiles filter text. It has no side effects; a failed
// compile returns a *CompileError and nothing else changes.
func Compile(src string) (*Program, error) {
	parsed, err := gojq.Parse(src)
	if err != nil {
		return nil, asCompileError(err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, asCompileError(err)
	}
	return &Program{Source: src, code: code}, nil
}

func asCompileError(err error) *CompileError {
	var pe *gojq.ParseError
	if errors.As(err, &pe) {
		return &CompileError{Message: err.Error(), Offset: pe.Offset}
	}
	return &CompileError{Message: err.Error(), Offset: -1}
}

// Run evaluates the program against every input in order, concatenating
// outputs. It stops early on a raised error or once limit outputs exist; in
// both cases the outputs gathered so far are returned alongside the outcome.
// Truncation means the stream kept producing past the limit; a run yielding
// exactly limit outputs and then ending is complete. A limit <= 0 means
// DefaultOutputCap.
func Run(prog *Program, inputs []document.Value, limit int) ([]document.Value, Outcome) {
	if limit <= 0 {
		limit = DefaultOutputCap
	}
	var outs []document.Value
	for _, in := range inputs {
		iter := prog.code.Run(document.ToGojq(in))
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if err, isErr := v.(error); isErr {
				var halt *gojq.HaltError
				if errors.As(err, &halt) && halt.Value() == nil {
					// plain halt: stream ends cleanly
					return outs, Outcome{}
				}
				if len(outs) >= limit {
					return outs, Outcome{Truncated: true}
				}
				if halt != nil {
					return outs, Outcome{Err: &RunError{Message: haltMessage(halt)}}
				}
				return outs, Outcome{Err: &RunError{Message: err.Error()}}
			}
			if len(outs) >= limit {
				return outs, Outcome{Truncated: true}
			}
			outs = append(outs, document.FromGojq(v))
		}
	}
	return outs, Outcome{}
}

func haltMessage(halt *gojq.HaltError) string {
	if s, ok := halt.Value().(string); ok {
		return s
	}
	return halt.Error()
}
