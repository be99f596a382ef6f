package registry

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sources selects an AssetSource by the name stored in stake records.
type Sources struct {
	byName map[string]AssetSource
	names  []string
}

func NewSources(sources ...AssetSource) (*Sources, error) {
	s := &Sources{byName: make(map[string]AssetSource, len(sources))}
	for _, src := range sources {
		name := src.Name()
		if name == "" {
			return nil, fmt.Errorf("asset source name cannot be empty")
		}
		if _, ok := s.byName[name]; ok {
			return nil, fmt.Errorf("duplicate asset source %q", name)
		}
		s.byName[name] = src
		s.names = append(s.names, name)
	}
	return s, nil
}

func (s *Sources) Get(name string) (AssetSource, error) {
	src, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, name)
	}
	return src, nil
}

func (s *Sources) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Approver is implemented by registries that let owners grant operators.
type Approver interface {
	SetApprovalForAll(ctx context.Context, owner, operator common.Address, approved bool) error
}

// Memory bundles in-memory registries for a single process deployment.
type Memory struct {
	Collections []*Collection
	Placeholder *Placeholder
	Reward      *Reward
}

func NewMemory(operator common.Address, collections []string, placeholderBaseURI, rewardBaseURI string) *Memory {
	m := &Memory{
		Placeholder: NewPlaceholder(operator, placeholderBaseURI),
		Reward:      NewReward(operator, rewardBaseURI),
	}
	for _, name := range collections {
		m.Collections = append(m.Collections, NewCollection(name))
	}
	return m
}

func (m *Memory) Collection(name string) (*Collection, bool) {
	for _, c := range m.Collections {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Approver returns the registry named name: a collection or the placeholder registry.
func (m *Memory) Approver(name string) (Approver, bool) {
	if name == m.Placeholder.Name() {
		return m.Placeholder, true
	}
	c, ok := m.Collection(name)
	if !ok {
		return nil, false
	}
	return c, true
}

func (m *Memory) Sources() (*Sources, error) {
	sources := make([]AssetSource, len(m.Collections))
	for i, c := range m.Collections {
		sources[i] = c
	}
	return NewSources(sources...)
}
