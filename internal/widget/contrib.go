package widget

import (
	"fmt"
	"sync"
)

// Contribution is a pluggable extension bound to one widget instance.
// The widget owns every contribution it constructs and disposes them
// with itself.
type Contribution interface {
	ID() string
	Dispose()
}

// ContributionCtor builds a contribution for a widget. A returned error
// or a panic is reported and skipped; it never aborts construction of
// the widget or of the remaining contributions.
type ContributionCtor func(w *Widget) (Contribution, error)

// ContributionDescriptor registers a constructor under a stable id.
type ContributionDescriptor struct {
	ID   string
	Ctor ContributionCtor
}

var (
	contribMu       sync.Mutex
	contribRegistry []ContributionDescriptor
)

// RegisterContribution adds a descriptor to the process-wide set every
// new widget instantiates from. Typically called from package init or
// program setup, before any widget exists.
func RegisterContribution(id string, ctor ContributionCtor) {
	contribMu.Lock()
	defer contribMu.Unlock()
	contribRegistry = append(contribRegistry, ContributionDescriptor{ID: id, Ctor: ctor})
}

// RegisteredContributions snapshots the process-wide descriptor set.
func RegisteredContributions() []ContributionDescriptor {
	contribMu.Lock()
	defer contribMu.Unlock()
	out := make([]ContributionDescriptor, len(contribRegistry))
	copy(out, contribRegistry)
	return out
}

// instantiateContributions constructs one instance per descriptor,
// isolating individual failures through the widget's reporter.
func (w *Widget) instantiateContributions(descs []ContributionDescriptor) {
	for _, desc := range descs {
		c, err := safeConstruct(desc, w)
		if err != nil {
			w.reporter(err)
			continue
		}
		w.contributions = append(w.contributions, c)
	}
}

func safeConstruct(desc ContributionDescriptor, w *Widget) (c Contribution, err error) {
	defer func() {
		if r := recover(); r != nil {
			c = nil
			err = fmt.Errorf("contribution %q panicked during construction: %v", desc.ID, r)
		}
	}()

	c, err = desc.Ctor(w)
	if err != nil {
		return nil, fmt.Errorf("contribution %q failed to construct: %w", desc.ID, err)
	}
	if c == nil {
		return nil, fmt.Errorf("contribution %q constructor returned nil", desc.ID)
	}
	return c, nil
}
