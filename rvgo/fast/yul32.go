package fast

// 32-bit equivalents of the yul-styled functions of slow-mode.
// Shift helpers take the shift amount first, like the EVM opcodes they mirror.

type U32 = uint32

func toU32(v uint8) U32 { return uint32(v) }

func shortToU32(v uint16) U32 {
	return uint32(v)
}

func u32Mask() U32 { // max uint32
	return 0xFFFF_FFFF
}

func and32(x, y U32) U32 {
	return x & y
}

func or32(x, y U32) U32 {
	return x | y
}

func shl32(x, y U32) U32 {
	return y << x
}

func shr32(x, y U32) U32 {
	return y >> x
}

func sar32(x, y U32) U32 {
	return uint32(int32(y) >> x)
}

// signExtend32 treats bit as the sign bit of v and extends it over the upper bits.
func signExtend32(v U32, bit U32) U32 {
	switch and32(v, shl32(bit, 1)) {
	case 0:
		// fill with zeroes, by masking
		return and32(v, shr32(31-bit, u32Mask()))
	default:
		// fill with ones, by or-ing
		return or32(v, shl32(bit, shr32(bit, u32Mask())))
	}
}
