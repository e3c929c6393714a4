package probing

import (
	"fmt"

	"github.com/JEONJIHO817/secded-hamming-31-26/internal/encoding"
)

const (
	NameNone   string = "none"
	NameSingle string = "single"
	NameDouble string = "double"
)

// Strategy enumerates error patterns for a codeword and knows what the
// decoder must answer for each of them.
type Strategy interface {
	Name() string
	Patterns() []Pattern
	Verify(want uint32, res encoding.Result) bool
}

func NewStrategy(name string) (Strategy, error) {
	switch name {
	case NameNone:
		return NewNoneProbing(), nil
	case NameSingle:
		return NewSingleProbing(), nil
	case NameDouble:
		return NewDoubleProbing(), nil
	default:
		return nil, fmt.Errorf("unknown probing strategy %q", name)
	}
}

func NewStrategies(names []string) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		strat, err := NewStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, strat)
	}
	return out, nil
}

// StrategyNone probes the untouched codeword.
type StrategyNone struct{}

func NewNoneProbing() *StrategyNone {
	return &StrategyNone{}
}

func (self *StrategyNone) Name() string {
	return NameNone
}

func (self *StrategyNone) Patterns() []Pattern {
	return []Pattern{0}
}

func (self *StrategyNone) Verify(want uint32, res encoding.Result) bool {
	return res.Status == encoding.StatusClean && res.Data == want
}
