// Package attribute implements the pure additive/multiplicative modifier
// stack the reference client uses for entity attributes such as
// movementSpeed. Modifiers are keyed by a stable UUID so they can be
// inserted and removed idempotently — the sprint speed boost toggles the
// same modifier UUID on and off every tick rather than accumulating.
package attribute

import "github.com/google/uuid"

// Operation selects how a Modifier combines with an attribute's base
// value, matching the reference client's three attribute operations.
type Operation int

const (
	OpAdd           Operation = 0
	OpMultiplyBase  Operation = 1
	OpMultiplyTotal Operation = 2
)

// Modifier is one entry in an attribute's modifier stack.
type Modifier struct {
	UUID      uuid.UUID
	Amount    float64
	Operation Operation
}

// Value is an attribute's base value plus its modifier stack.
type Value struct {
	base      float64
	modifiers []Modifier
}

// New creates an attribute value with the given base and no modifiers.
func New(base float64) *Value {
	return &Value{base: base}
}

// AddModifier inserts or replaces (by UUID) a modifier on the stack.
func AddModifier(v *Value, m Modifier) {
	for i, existing := range v.modifiers {
		if existing.UUID == m.UUID {
			v.modifiers[i] = m
			return
		}
	}
	v.modifiers = append(v.modifiers, m)
}

// DeleteModifier removes the modifier with the given UUID, if present.
func DeleteModifier(v *Value, id uuid.UUID) {
	for i, existing := range v.modifiers {
		if existing.UUID == id {
			v.modifiers = append(v.modifiers[:i], v.modifiers[i+1:]...)
			return
		}
	}
}

// CheckModifier reports whether a modifier with the given UUID is present.
func CheckModifier(v *Value, id uuid.UUID) bool {
	for _, existing := range v.modifiers {
		if existing.UUID == id {
			return true
		}
	}
	return false
}

// GetValue computes the attribute's effective value: additive modifiers
// are summed onto the base, multiply-base modifiers scale the base
// additively into that sum, and multiply-total modifiers each scale the
// running total in turn — the same three-pass order the reference
// client's Attribute.calculateValue uses.
func GetValue(v *Value) float64 {
	result := v.base
	for _, m := range v.modifiers {
		if m.Operation == OpAdd {
			result += m.Amount
		}
	}
	for _, m := range v.modifiers {
		if m.Operation == OpMultiplyBase {
			result += v.base * m.Amount
		}
	}
	for _, m := range v.modifiers {
		if m.Operation == OpMultiplyTotal {
			result *= 1 + m.Amount
		}
	}
	return result
}
