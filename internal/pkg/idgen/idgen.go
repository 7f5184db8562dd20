// Package idgen hands out identifiers for inventory items.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/Saichiiro/astoria-sub001/internal/pkg/idgen Generator

type Generator interface {
	Generate() string
}

// UUIDGenerator produces random UUIDs, optionally as "<prefix>_<uuid>".
type UUIDGenerator struct {
	prefix string
}

func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() string {
	id := uuid.NewString()
	if g.prefix != "" {
		return g.prefix + "_" + id
	}
	return id
}

// SequentialGenerator produces "<prefix>_1", "<prefix>_2", ... and is safe
// for concurrent use.
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}
