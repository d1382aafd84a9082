package fast

// IsCompressed returns whether or not the word is the encoding of a 16-bit `C` extension instruction.
// In the 32-bit instructions, the lowest-order 2 bits are always set, whereas in the compressed 16-bit instruction set,
// this is not the case. Such words are not decoded, they resolve to OpUnknown.
func IsCompressed(instr U32) bool {
	return and32(instr, toU32(3)) != toU32(3)
}
