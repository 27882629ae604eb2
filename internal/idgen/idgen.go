package idgen

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	StrategyUUID     = "uuid"
	StrategySequence = "sequence"
)

// Generator hands out event identifiers.
type Generator interface {
	NewID() string
}

// UUIDGenerator issues time-ordered UUIDv7 strings.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// v7 only fails when the random source does; v4 panics in that case anyway
		return uuid.NewString()
	}
	return id.String()
}

// SequenceGenerator issues decimal ids from a monotonic counter.
type SequenceGenerator struct {
	next atomic.Uint64
}

// NewSequenceGenerator returns a generator whose first id is start.
func NewSequenceGenerator(start uint64) *SequenceGenerator {
	g := &SequenceGenerator{}
	g.next.Store(start)
	return g
}

func (g *SequenceGenerator) NewID() string {
	return strconv.FormatUint(g.next.Add(1)-1, 10)
}

// FromStrategy picks a generator by its configured name.
func FromStrategy(name string, sequenceStart uint64) (Generator, error) {
	switch name {
	case StrategyUUID, "":
		return NewUUIDGenerator(), nil
	case StrategySequence:
		return NewSequenceGenerator(sequenceStart), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", name)
	}
}
