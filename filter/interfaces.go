package filter

import (
	"context"

	"github.com/s0up4200/alquran/quran"
)

// Filter decides whether an edition is kept
type Filter interface {
	Match(edition quran.Edition) bool
}

// CompiledFilter is a parsed expression ready to run against editions
type CompiledFilter interface {
	Filter

	// Run is Match with the evaluation error surfaced
	Run(edition quran.Edition) (bool, error)

	// Expression returns the source the filter was compiled from
	Expression() string
}

// Compiler turns expressions into filters
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// Evaluator applies a filter to a list of editions
type Evaluator interface {
	Apply(ctx context.Context, f CompiledFilter, editions []quran.Edition) ([]quran.Edition, error)
}

// CachingCompiler is a Compiler that remembers what it compiled
type CachingCompiler interface {
	Compiler

	Clear()
	Size() int
}
