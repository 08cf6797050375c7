package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxInboundLen bounds request ids accepted from callers.
const MaxInboundLen = 128

// Generator creates opaque IDs suitable for request correlation.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues version 7 UUIDs, so ids sort by issue time in logs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return value.String(), nil
}

// Inbound returns a caller-supplied id if it is safe to echo and log:
// non-empty, at most MaxInboundLen bytes, and visible ASCII only.
func Inbound(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" || len(value) > MaxInboundLen {
		return "", false
	}
	for i := 0; i < len(value); i++ {
		if c := value[i]; c <= ' ' || c > '~' {
			return "", false
		}
	}
	return value, true
}
