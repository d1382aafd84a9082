package fast

// Encoders for the six RV32I formats, to craft words with known fields.

func encR(opcode, rd, funct3, rs1, rs2, funct7 U32) U32 {
	return opcode | rd<<7 | funct3<<12 | rs1<<15 | rs2<<20 | funct7<<25
}

func encI(opcode, rd, funct3, rs1 U32, imm int32) U32 {
	return opcode | rd<<7 | funct3<<12 | rs1<<15 | (U32(imm)&0xFFF)<<20
}

func encS(opcode, funct3, rs1, rs2 U32, imm int32) U32 {
	v := U32(imm)
	return opcode | (v&0x1F)<<7 | funct3<<12 | rs1<<15 | rs2<<20 | (v>>5&0x7F)<<25
}

func encB(funct3, rs1, rs2 U32, imm int32) U32 {
	v := U32(imm)
	return 0x63 |
		(v>>11&1)<<7 | (v>>1&0xF)<<8 |
		funct3<<12 | rs1<<15 | rs2<<20 |
		(v>>5&0x3F)<<25 | (v>>12&1)<<31
}

func encU(opcode, rd, imm20 U32) U32 {
	return opcode | rd<<7 | (imm20&0xFFFFF)<<12
}

func encJ(rd U32, imm int32) U32 {
	v := U32(imm)
	return 0x6F | rd<<7 |
		(v>>12&0xFF)<<12 | (v>>11&1)<<20 |
		(v>>1&0x3FF)<<21 | (v>>20&1)<<31
}
