package slow

import "github.com/holiman/uint256"

// These are type-safe pure functions *styled to translate to yul*, to use uint256 variables for 32 bit math.

// U32 is like a Go uint32, always within range, but represented as uint256 in memory with 0 padding.
type U32 uint256.Int

func (v U32) val() uint32 {
	return uint32((*uint256.Int)(&v).Uint64())
}

// Val converts back to a native word, for comparison against the fast implementation.
func Val(v U32) uint32 {
	return v.val()
}

func FromUint32(v uint32) U32 {
	return U32(*uint256.NewInt(uint64(v)))
}

func toU256(v uint8) U256 {
	return *uint256.NewInt(uint64(v))
}

func toU32(v uint8) U32 {
	return U32(toU256(v))
}

func shortToU32(v uint16) U32 {
	return U32(*uint256.NewInt(uint64(v)))
}

func u32Mask() U32 { // max uint32
	return U32(shr(toU256(224), not(U256{}))) // 256-32 = 224
}

func u32TopBit() U256 { // 1 << 31
	return shl(toU256(31), toU256(1))
}

func u256ToU32(v U256) U32 {
	return U32(and(v, U256(u32Mask())))
}

// signExtend32To256 extends bit 31 over the upper 224 bits
func signExtend32To256(v U32) U256 {
	switch and(U256(v), u32TopBit()) {
	case U256{}:
		return U256(v)
	default:
		return or(shl(toU256(32), not(U256{})), U256(v))
	}
}

func and32(x, y U32) (out U32) {
	out = U32(and(U256(x), U256(y)))
	return
}

func or32(x, y U32) (out U32) {
	out = U32(or(U256(x), U256(y)))
	return
}

func shl32(x, y U32) (out U32) {
	out = u256ToU32(shl(U256(x), U256(y)))
	return
}

func shr32(x, y U32) (out U32) {
	out = U32(shr(U256(x), U256(y)))
	return
}

func sar32(x, y U32) (out U32) {
	out = u256ToU32(sar(U256(x), signExtend32To256(y)))
	return
}
