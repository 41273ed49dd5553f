package ordmap

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Key is the set of types every container in this module may be keyed by:
// any fixed-width signed or unsigned integer. String keys and non-integral
// keys are out of scope (spec.md Non-goals).
type Key interface {
	constraints.Integer
}

// IsSigned reports whether K is a signed integer type. It relies on the
// wraparound behavior of unsigned subtraction: for a signed zero value,
// 0-1 is -1, which is less than 0; for an unsigned zero value, 0-1 wraps
// to the type's maximum value, which is not less than 0. This works at
// compile time per instantiation without any type switch.
func IsSigned[K Key]() bool {
	var zero K
	return zero-1 < zero
}

// BitWidth returns 8*sizeof(K), the bit width of K.
func BitWidth[K Key]() int {
	var zero K
	return int(unsafe.Sizeof(zero)) * 8
}

// NullKey returns the maximum representable value of K: the sentinel every
// container that needs one reserves and refuses to insert (spec.md §3,
// "Global sentinel constant NULL_KEY = max-representable").
func NullKey[K Key]() K {
	ones := ^K(0) // all bits set: -1 for signed K, max value for unsigned K
	if !IsSigned[K]() {
		return ones
	}
	width := BitWidth[K]()
	signBit := K(1) << uint(width-1)
	return ones &^ signBit // clear the sign bit: largest representable positive value
}

// SignBit returns the bit mask with only K's most significant bit set. For
// unsigned K it is zero. Flipping a signed key's sign bit maps it to an
// unsigned bit pattern that preserves ascending order under unsigned
// comparison (spec.md §3, "Key encoding for the X-Fast Trie"; spec.md §4.1,
// "Signed handling").
func SignBit[K Key]() K {
	if !IsSigned[K]() {
		return 0
	}
	width := BitWidth[K]()
	return K(1) << uint(width-1)
}

// Unsigned maps k to its ascending-order-preserving unsigned bit pattern by
// flipping the sign bit (a no-op for unsigned K). The result is still typed
// as K, and its order matches the input order only when its bits are read as
// unsigned: for signed K a non-negative input comes out with the sign bit
// set (negative as a K), a negative input with it cleared. Callers in this
// module therefore widen it with ToUint64 before comparing or shifting.
func Unsigned[K Key](k K) K {
	return k ^ SignBit[K]()
}

// ToUint64 widens k's bit pattern into a uint64, zero-extended rather than
// sign-extended: narrower types go through their same-width unsigned
// counterpart first. Callers needing to mask or index by a sub-word slice of
// k's bits (radixsort's digit extraction, the X-Fast Trie's level hashing)
// do so on the returned uint64, since an untyped mask like 0xFF is not
// representable in every type in K's type set (int8 included) and so cannot
// be applied directly to a K-typed operand.
func ToUint64[K Key](k K) uint64 {
	switch BitWidth[K]() {
	case 8:
		return uint64(uint8(k))
	case 16:
		return uint64(uint16(k))
	case 32:
		return uint64(uint32(k))
	default:
		return uint64(k)
	}
}
