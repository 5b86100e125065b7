// Package ident abstracts id generation the same way clock abstracts time:
// production uses UUIDs, tests inject a sequential generator so ids are
// stable in fixtures.
package ident

import (
	"fmt"

	"github.com/google/uuid"
)

type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() Generator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequentialGenerator yields "prefix-1", "prefix-2", ... for deterministic
// test fixtures.
type SequentialGenerator struct {
	prefix string
	next   int
}

func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) NewID() string {
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}
