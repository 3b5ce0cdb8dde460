package filter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/s0up4200/alquran/quran"
)

// Manager holds named filter presets
type Manager struct {
	compiler  Compiler
	evaluator Evaluator
	presets   map[string]CompiledFilter
	mu        sync.RWMutex
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithCompiler replaces the default cached expr compiler
func WithCompiler(c Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = c
	}
}

// WithEvaluator replaces the default ConcurrentEvaluator
func WithEvaluator(e Evaluator) ManagerOption {
	return func(m *Manager) {
		m.evaluator = e
	}
}

// NewManager creates a Manager with no presets
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler:  NewExprCompiler(WithCache(64)),
		evaluator: NewConcurrentEvaluator(),
		presets:   make(map[string]CompiledFilter),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Compile compiles an ad-hoc expression with the manager's compiler
func (m *Manager) Compile(expression string) (CompiledFilter, error) {
	return m.compiler.Compile(expression)
}

// Register compiles expression and stores it under name, replacing any
// previous preset of that name
func (m *Manager) Register(name, expression string) error {
	f, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}

	m.mu.Lock()
	m.presets[name] = f
	m.mu.Unlock()
	return nil
}

// RegisterAll compiles every preset before storing any of them
func (m *Manager) RegisterAll(presets map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(presets))
	for _, name := range slices.Sorted(maps.Keys(presets)) {
		f, err := m.compiler.Compile(presets[name])
		if err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
		compiled[name] = f
	}

	m.mu.Lock()
	maps.Copy(m.presets, compiled)
	m.mu.Unlock()
	return nil
}

// Preset returns the compiled preset called name
func (m *Manager) Preset(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.presets[name]
	return f, ok
}

// Names lists the registered presets in sorted order
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.presets))
}

// Apply runs f over editions
func (m *Manager) Apply(ctx context.Context, f CompiledFilter, editions []quran.Edition) ([]quran.Edition, error) {
	return m.evaluator.Apply(ctx, f, editions)
}

// ApplyPreset runs the named preset over editions
func (m *Manager) ApplyPreset(ctx context.Context, name string, editions []quran.Edition) ([]quran.Edition, error) {
	f, ok := m.Preset(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return m.evaluator.Apply(ctx, f, editions)
}
