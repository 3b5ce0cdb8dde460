package filter

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/alquran/quran"
)

// ExprCompilerOption configures the expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache keeps up to size compiled filters keyed by expression
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newProgramCache(size)
		}
	}
}

// WithFunctions adds helpers callable from expressions.
// A helper must not capture per-edition state.
func WithFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.extra, funcs)
	}
}

type exprCompiler struct {
	extra map[string]any
	cache *programCache
}

// NewExprCompiler returns a Compiler backed by expr-lang
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{extra: make(map[string]any)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile checks expression against the edition environment and requires a
// boolean result
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if c.cache != nil {
		if f, ok := c.cache.get(expression); ok {
			return f, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.environment(quran.Edition{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: "invalid expression", Err: err}
	}

	f := &exprFilter{expression: expression, program: program, compiler: c}
	if c.cache != nil {
		c.cache.put(expression, f)
	}
	return f, nil
}

func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.clear()
	}
}

func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.size()
	}
	return 0
}

// environment exposes an edition to expressions as flat lowercase names
func (c *exprCompiler) environment(e quran.Edition) map[string]any {
	direction := ""
	if e.Direction != nil {
		direction = *e.Direction
	}

	env := make(map[string]any, 16+len(c.extra))
	maps.Copy(env, c.extra)

	env["identifier"] = e.Identifier
	env["language"] = e.Language.String()
	env["name"] = e.Name
	env["englishName"] = e.EnglishName
	env["format"] = e.Format.String()
	env["editionType"] = e.Type.Token()
	env["direction"] = direction

	env["isText"] = func() bool { return e.Format == quran.FormatText }
	env["isAudio"] = func() bool { return e.Format == quran.FormatAudio }
	env["isRTL"] = func() bool { return e.IsRTL() }
	env["isKnownType"] = func() bool { return e.Type.IsKnown() }
	env["mentions"] = func(s string) bool {
		s = strings.ToLower(s)
		return strings.Contains(strings.ToLower(e.Name), s) ||
			strings.Contains(strings.ToLower(e.EnglishName), s) ||
			strings.Contains(strings.ToLower(e.Identifier), s)
	}
	env["hasPrefix"] = func(s, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
	}

	return env
}

type exprFilter struct {
	expression string
	program    *vm.Program
	compiler   *exprCompiler
}

// Run evaluates the filter against a single edition
func (f *exprFilter) Run(e quran.Edition) (bool, error) {
	out, err := expr.Run(f.program, f.compiler.environment(e))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Identifier: e.Identifier, Err: err}
	}
	return out.(bool), nil
}

// Match reports whether e passes; evaluation failures count as no match
func (f *exprFilter) Match(e quran.Edition) bool {
	ok, err := f.Run(e)
	return err == nil && ok
}

func (f *exprFilter) Expression() string {
	return f.expression
}
