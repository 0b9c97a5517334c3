package precompiler

import (
	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
)

// lookupOrCompute returns the cached entry of file or computes and stores it.
// A compute error is returned as is; nothing is stored and the triggers taken for it are released.
func (p *Precompiler) lookupOrCompute(
	file domain.SourceFile,
	compute func() (*domain.CacheEntry, error),
) (entry *domain.CacheEntry, cached bool, err error) {
	key := file.Key()
	if entry, ok := p.cache.Get(key); ok {
		return entry, true, nil
	}

	// Triggers are taken before compiling so a change during compilation evicts the result.
	triggers := p.triggers(file)

	entry, err = compute()
	if err != nil {
		release(triggers)
		return nil, false, err
	}
	p.cache.Set(key, entry, triggers...)
	return entry, false, nil
}

// triggers watches the file itself and every imports location that may apply to it, whether or
// not an imports file exists there yet.
func (p *Precompiler) triggers(file domain.SourceFile) []ports.Trigger {
	locations := p.pipeline.Hierarchy.ImportsLocations(file.RelativePath)
	triggers := make([]ports.Trigger, 0, len(locations)+1)
	triggers = append(triggers, p.pipeline.Provider.Watch(file.RelativePath))
	for _, loc := range locations {
		triggers = append(triggers, p.pipeline.Provider.Watch(loc))
	}
	return triggers
}

// releaser is implemented by triggers that can be unregistered before they fire.
type releaser interface {
	Release()
}

func release(triggers []ports.Trigger) {
	for _, t := range triggers {
		if r, ok := t.(releaser); ok {
			r.Release()
		}
	}
}
