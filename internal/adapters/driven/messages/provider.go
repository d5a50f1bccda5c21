package messages

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/calc/internal/core/domain"
	"github.com/custodia-labs/calc/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.MessageProvider = (*Provider)(nil)

//go:embed messages.toml
var defaultDocument []byte

// record is the TOML shape of a single message set.
type record struct {
	License string `toml:"license"`
	Welcome string `toml:"welcome"`
	Goodbye string `toml:"goodbye"`
	Error   string `toml:"error"`
	Info    string `toml:"info"`
}

func (r record) messageSet() domain.MessageSet {
	return domain.MessageSet{
		License: r.License,
		Welcome: r.Welcome,
		Goodbye: r.Goodbye,
		Error:   r.Error,
		Info:    r.Info,
	}
}

// Provider serves message sets decoded from a TOML document.
// It is immutable after construction.
type Provider struct {
	sets  map[domain.Mode]domain.MessageSet
	modes []domain.Mode
}

// NewProvider creates a provider from the message sets embedded in the binary.
func NewProvider() (*Provider, error) {
	return Parse(defaultDocument)
}

// Parse creates a provider from a TOML document with one table per mode.
// Every table must name a known mode and define all five messages.
func Parse(document []byte) (*Provider, error) {
	var records map[string]record
	if err := toml.Unmarshal(document, &records); err != nil {
		return nil, fmt.Errorf("decode message sets: %w", err)
	}

	p := &Provider{
		sets:  make(map[domain.Mode]domain.MessageSet, len(records)),
		modes: make([]domain.Mode, 0, len(records)),
	}
	for name, r := range records {
		mode := domain.Mode(name)
		if !mode.IsValid() {
			return nil, fmt.Errorf("message set %q: %w", name, domain.ErrUnknownMode)
		}
		set := r.messageSet()
		if !set.IsComplete() {
			return nil, fmt.Errorf("message set %q: %w", name, domain.ErrIncompleteMessages)
		}
		p.sets[mode] = set
		p.modes = append(p.modes, mode)
	}
	sort.Slice(p.modes, func(i, j int) bool { return p.modes[i] < p.modes[j] })

	return p, nil
}

// Messages returns the message set for a mode.
func (p *Provider) Messages(mode domain.Mode) (domain.MessageSet, error) {
	set, ok := p.sets[mode]
	if !ok {
		return domain.MessageSet{}, fmt.Errorf("messages for %q: %w", mode, domain.ErrUnknownMode)
	}
	return set, nil
}

// Modes lists the modes with a message set, sorted by name.
func (p *Provider) Modes() []domain.Mode {
	modes := make([]domain.Mode, len(p.modes))
	copy(modes, p.modes)
	return modes
}
