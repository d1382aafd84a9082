package slow

import "github.com/holiman/uint256"

// EVM yul functions
// Yul exposes all EVM opcodes as functions.

type U256 = uint256.Int

func not(x U256) (out U256) {
	out.Not(&x)
	return
}

func and(x, y U256) (out U256) {
	out.And(&x, &y)
	return
}

func or(x, y U256) (out U256) {
	out.Or(&x, &y)
	return
}

func shl(x, y U256) (out U256) {
	if !x.IsUint64() || x.Uint64() >= 256 {
		return
	}
	out.Lsh(&y, uint(x.Uint64()))
	return
}

func shr(x, y U256) (out U256) {
	if !x.IsUint64() || x.Uint64() >= 256 {
		return
	}
	out.Rsh(&y, uint(x.Uint64()))
	return
}

func sar(x, y U256) (out U256) {
	if !x.IsUint64() || x.Uint64() >= 256 {
		if y.Sign() < 0 {
			return not(U256{})
		}
		return
	}
	out.SRsh(&y, uint(x.Uint64()))
	return
}
