package flowforge

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/flowforge/flowforge/internal/logging"
	"github.com/flowforge/flowforge/pkg/analysis"
	"github.com/flowforge/flowforge/pkg/builder"
	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/emit"
	"github.com/flowforge/flowforge/pkg/intent"
	"github.com/flowforge/flowforge/pkg/registry"
	"github.com/flowforge/flowforge/pkg/templates"
)

// Version is the library version, also stamped into blueprint
// metadata.
const Version = "1.0.0"

// Result is the complete output of one generation: the typed graph,
// its diagnostics, and the serialized blueprint document.
type Result struct {
	Scenario    *domain.Scenario
	Diagnostics []domain.Diagnostic
	Blueprint   *emit.Blueprint
}

// Generation converts the result to the storable artifact form.
func (r *Result) Generation() *domain.Generation {
	return &domain.Generation{
		Scenario:    r.Scenario,
		Diagnostics: r.Diagnostics,
	}
}

// Generator is the high-level entry point: description in, blueprint
// and diagnostics out. A Generator is immutable after construction
// and safe for concurrent use.
type Generator struct {
	registry  *registry.Registry
	extractor *intent.Extractor
	builder   *builder.Builder
	engine    *analysis.Engine
	templates []templates.Template
	logger    *slog.Logger
	clock     func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry replaces the default module catalogue.
func WithRegistry(reg *registry.Registry) Option {
	return func(g *Generator) {
		g.registry = reg
	}
}

// WithRules replaces the default intent rule tables.
func WithRules(rules intent.Rules) Option {
	return func(g *Generator) {
		g.extractor = intent.NewExtractor(rules)
	}
}

// WithTemplates replaces the built-in template catalogue.
func WithTemplates(catalogue []templates.Template) Option {
	return func(g *Generator) {
		g.templates = catalogue
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithClock overrides the timestamp source used for blueprint
// metadata. Useful for reproducible output.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

// New creates a Generator with the default catalogue, rules, and
// templates unless options override them.
func New(opts ...Option) *Generator {
	g := &Generator{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.registry == nil {
		g.registry = registry.Default()
	}
	if g.extractor == nil {
		g.extractor = intent.NewExtractor(intent.DefaultRules())
	}
	if g.templates == nil {
		g.templates = templates.Builtin()
	}
	if g.logger == nil {
		g.logger = logging.NewNop()
	}

	g.builder = builder.New(g.registry)
	g.engine = analysis.NewEngine(g.registry)
	return g
}

// Generate compiles a natural-language description into a scenario,
// diagnostics, and blueprint. It fails only on unusable input; a
// structurally broken graph comes back as error diagnostics.
func (g *Generator) Generate(description string) (*Result, error) {
	extracted, err := g.extractor.Extract(description)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("intents extracted",
		"trigger", extracted.Trigger.Kind,
		"actions", len(extracted.Actions),
		"branching", extracted.Branching,
	)

	return g.assemble(extracted, description)
}

// FromTemplate builds a scenario from a named template instead of
// free-form text.
func (g *Generator) FromTemplate(name string) (*Result, error) {
	tpl, ok := templates.Lookup(g.templates, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTemplate, name)
	}
	return g.assemble(tpl.Result, tpl.Description)
}

// Validate runs the analysis engine over an existing scenario.
func (g *Generator) Validate(s *domain.Scenario) []domain.Diagnostic {
	return g.engine.Analyze(s)
}

// Templates returns the generator's template catalogue.
func (g *Generator) Templates() []templates.Template {
	return g.templates
}

// Registry returns the generator's module catalogue.
func (g *Generator) Registry() *registry.Registry {
	return g.registry
}

func (g *Generator) assemble(extracted intent.Result, description string) (*Result, error) {
	scenario, err := g.builder.Build(extracted, description)
	if err != nil {
		return nil, err
	}

	diagnostics := g.engine.Analyze(scenario)
	blueprint := emit.FromScenario(scenario, g.clock(), "flowforge/"+Version)

	g.logger.Info("scenario generated",
		"name", scenario.Name,
		"modules", len(scenario.Nodes),
		"errors", domain.HasErrors(diagnostics),
	)

	return &Result{
		Scenario:    scenario,
		Diagnostics: diagnostics,
		Blueprint:   blueprint,
	}, nil
}
