// Package core implements the finite-field, polynomial, and Merkle-tree
// algebra that the STARK protocol is built from.
package core

import "fmt"

// Prime is the modulus of the base field, GF(17). The protocol is defined
// only over this field; there is no notion of a configurable field size.
const Prime = 17

// BaseField is an element of GF(17), always held in canonical form [0, 17).
type BaseField struct {
	value uint8
}

// NewBaseField reduces a signed integer into canonical form.
func NewBaseField(n int) BaseField {
	r := n % Prime
	if r < 0 {
		r += Prime
	}
	return BaseField{value: uint8(r)}
}

// Zero returns the additive identity.
func Zero() BaseField { return BaseField{value: 0} }

// One returns the multiplicative identity.
func One() BaseField { return BaseField{value: 1} }

// Uint8 returns the canonical residue as a uint8 in [0, 17).
func (a BaseField) Uint8() uint8 { return a.value }

// Byte returns the canonical single-byte encoding used for hashing, per
// spec.md §6 ("a single byte equal to the field element's least nonnegative
// residue").
func (a BaseField) Byte() byte { return byte(a.value) }

// Add returns a + b mod 17.
func (a BaseField) Add(b BaseField) BaseField {
	return NewBaseField(int(a.value) + int(b.value))
}

// Sub returns a - b mod 17.
func (a BaseField) Sub(b BaseField) BaseField {
	return NewBaseField(int(a.value) - int(b.value))
}

// Neg returns -a mod 17.
func (a BaseField) Neg() BaseField {
	return NewBaseField(-int(a.value))
}

// Mul returns a * b mod 17. The product of two values below 17 never
// exceeds 16*16=256, well within any integer width, so no intermediate
// reduction is required.
func (a BaseField) Mul(b BaseField) BaseField {
	return NewBaseField(int(a.value) * int(b.value))
}

// Square returns a * a.
func (a BaseField) Square() BaseField {
	return a.Mul(a)
}

// Exp returns a^n for a small non-negative exponent, by repeated
// multiplication (the exponents used in this protocol never exceed 3, so
// square-and-multiply would be premature optimization).
func (a BaseField) Exp(n int) BaseField {
	result := One()
	for i := 0; i < n; i++ {
		result = result.Mul(a)
	}
	return result
}

// generator3Powers[i] = 3^i mod 17, used as the discrete-log table backing
// Log and Inv. 3 is a generator of the multiplicative group of GF(17).
var generator3Powers = func() [Prime - 1]BaseField {
	var table [Prime - 1]BaseField
	acc := One()
	three := NewBaseField(3)
	for i := range table {
		table[i] = acc
		acc = acc.Mul(three)
	}
	return table
}()

// Log computes the discrete logarithm of a nonzero element base 3: the
// unique i in [0, 16) with 3^i = a. Spec.md §4.1 fixes this as the
// multiplicative-inverse mechanism for this tiny field; log(0) is an
// invariant violation.
func (a BaseField) Log() (int, error) {
	if a.IsZero() {
		return 0, fmt.Errorf("%w: log of zero", ErrFieldInvariant)
	}
	for i, v := range generator3Powers {
		if v.Equal(a) {
			return i, nil
		}
	}
	// Unreachable: every nonzero element of GF(17) is a power of the
	// generator 3, since 3 has order 16 = |GF(17)*|.
	panic("BaseField.Log: nonzero element missing from generator table")
}

// Inv computes the multiplicative inverse via discrete log against the
// fixed generator 3: find i with 3^i = a, return 3^(16-i). Division by
// zero / inverse of zero is an invariant violation, never a recoverable
// verification failure (spec.md §7).
func (a BaseField) Inv() (BaseField, error) {
	i, err := a.Log()
	if err != nil {
		return BaseField{}, fmt.Errorf("%w: inverse of zero", ErrFieldInvariant)
	}
	return generator3Powers[(Prime-1-i)%(Prime-1)], nil
}

// Div returns a / b. Division by zero is an invariant violation.
func (a BaseField) Div(b BaseField) (BaseField, error) {
	inv, err := b.Inv()
	if err != nil {
		return BaseField{}, fmt.Errorf("cannot divide by zero: %w", err)
	}
	return a.Mul(inv), nil
}

// Equal reports whether a and b represent the same residue.
func (a BaseField) Equal(b BaseField) bool { return a.value == b.value }

// IsZero reports whether a is the additive identity.
func (a BaseField) IsZero() bool { return a.value == 0 }

// IsOne reports whether a is the multiplicative identity.
func (a BaseField) IsOne() bool { return a.value == 1 }

// String renders the canonical residue.
func (a BaseField) String() string { return fmt.Sprintf("%d", a.value) }
