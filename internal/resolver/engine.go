package resolver

import (
	"fmt"
	"path/filepath"

	"cfgen/internal/overrides"
	"cfgen/internal/schema"
	"cfgen/pkg/logging"
)

// BuildContext carries the build-supplied inputs for one resolution pass. The
// invoking pipeline fills it from flags or environment; the engine itself
// reads no ambient state.
type BuildContext struct {
	// OutDir is the build output directory hint used for root discovery. May
	// be empty, in which case discovery fails gracefully.
	OutDir string

	// Root, when set, is the project root; discovery is skipped entirely.
	Root string

	// Sentinel overrides the output-root sentinel name for discovery.
	// Empty means overrides.DefaultSentinel.
	Sentinel string

	// ComponentID selects the component's override sub-table. Empty means the
	// schema's declared package name.
	ComponentID string

	// Strict turns every "no override source" condition into a fatal error.
	Strict bool
}

// Locator returns the root locator the context implies: the explicit root when
// one was supplied, the sentinel walk otherwise.
func (ctx BuildContext) Locator() overrides.RootLocator {
	if ctx.Root != "" {
		return overrides.StaticLocator{Root: ctx.Root}
	}
	return overrides.SentinelLocator{OutDir: ctx.OutDir, Sentinel: ctx.Sentinel}
}

// Engine orchestrates one resolution pass: root discovery, override loading,
// the strict check, then per-field resolution in declaration order.
type Engine struct {
	// Locator, when set, replaces the locator derived from the BuildContext.
	// Tests and callers with non-conventional layouts plug in their own.
	Locator overrides.RootLocator
}

// New returns an Engine with the default locator behavior.
func New() *Engine {
	return &Engine{}
}

// Resolve produces the final configuration value set for one component. Every
// declared field yields exactly one resolved entry, in declaration order. On
// any fatal condition (schema contract violation, type mismatch, strict
// violation) no configuration is returned at all.
func (e *Engine) Resolve(s *schema.Schema, ctx BuildContext) (*Config, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	componentID := ctx.ComponentID
	if componentID == "" {
		componentID = s.Package
	}

	comp, present, err := e.loadOverrides(componentID, ctx)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Component: componentID,
		Package:   s.Package,
		Fields:    make([]ResolvedField, 0, len(s.Fields)),
	}
	for _, f := range s.Fields {
		resolved, err := ResolveField(f, comp, present)
		if err != nil {
			return nil, err
		}
		cfg.Fields = append(cfg.Fields, resolved)
	}

	logging.Info("Resolver", "Resolved %d fields for %s (%d overridden)",
		len(cfg.Fields), componentID, cfg.Overridden())
	return cfg, nil
}

// loadOverrides obtains the component's override sub-table, degrading to
// "absent" at each stage unless strict mode escalates the condition.
func (e *Engine) loadOverrides(componentID string, ctx BuildContext) (overrides.Component, bool, error) {
	locator := e.Locator
	if locator == nil {
		locator = ctx.Locator()
	}

	root, ok := locator.Locate()
	if !ok {
		if ctx.Strict {
			return nil, false, &StrictViolationError{
				Reason: fmt.Sprintf("project root not found from output directory hint %q", ctx.OutDir),
			}
		}
		logging.Info("Resolver", "Project root not found, resolving %s from defaults", componentID)
		return nil, false, nil
	}

	table, err := overrides.LoadTable(root)
	if err != nil {
		// Malformed override files degrade to "absent" unless strict mode is
		// set, in which case they are fatal.
		if ctx.Strict {
			return nil, false, &StrictViolationError{
				Reason: "override file is unusable",
				Path:   filepath.Join(root, overrides.OverrideFileName),
				Err:    err,
			}
		}
		logging.Warn("Overrides", "Ignoring unusable override file: %v", err)
		return nil, false, nil
	}
	if table == nil {
		if ctx.Strict {
			return nil, false, &StrictViolationError{
				Reason: "no override file found",
				Path:   filepath.Join(root, overrides.OverrideFileName),
			}
		}
		return nil, false, nil
	}

	comp, present := table.Component(componentID)
	if !present {
		if ctx.Strict {
			return nil, false, &StrictViolationError{
				Reason: fmt.Sprintf("component %q has no table in the override file", componentID),
				Path:   table.Path,
			}
		}
		logging.Debug("Resolver", "Component %s not present in %s, using defaults", componentID, table.Path)
		return nil, false, nil
	}
	return comp, true, nil
}
