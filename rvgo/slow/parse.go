package slow

// Functions to parse the instruction field values from the different RV32I instruction formats.
// These should 1:1 match with the same definitions in the fast package.

func parseOpcode(instr U32) U32 {
	return and32(instr, toU32(0x7F))
}

func parseRd(instr U32) U32 {
	return and32(shr32(toU32(7), instr), toU32(0x1F))
}

func parseFunct3(instr U32) U32 {
	return and32(shr32(toU32(12), instr), toU32(0x7))
}

func parseRs1(instr U32) U32 {
	return and32(shr32(toU32(15), instr), toU32(0x1F))
}

func parseRs2(instr U32) U32 {
	return and32(shr32(toU32(20), instr), toU32(0x1F))
}

func parseFunct7(instr U32) U32 {
	return shr32(toU32(25), instr)
}

func parseImmTypeI(instr U32) U32 {
	return sar32(toU32(20), instr)
}

func parseImmTypeS(instr U32) U32 {
	return or32(
		shl32(toU32(5), shr32(toU32(25), instr)),
		and32(shr32(toU32(7), instr), toU32(0x1F)),
	)
}

func parseImmTypeB(instr U32) U32 {
	return or32(
		or32(
			shl32(toU32(1), and32(shr32(toU32(8), instr), toU32(0xF))),
			shl32(toU32(5), and32(shr32(toU32(25), instr), toU32(0x3F))),
		),
		or32(
			shl32(toU32(11), and32(shr32(toU32(7), instr), toU32(1))),
			shl32(toU32(12), shr32(toU32(31), instr)),
		),
	)
}

func parseImmTypeU(instr U32) U32 {
	return shl32(toU32(12), shr32(toU32(12), instr))
}

func parseImmTypeJ(instr U32) U32 {
	return or32(
		or32(
			shl32(toU32(1), and32(shr32(toU32(21), instr), shortToU32(0x3FF))),
			shl32(toU32(11), and32(shr32(toU32(20), instr), toU32(1))),
		),
		or32(
			shl32(toU32(12), and32(shr32(toU32(12), instr), toU32(0xFF))),
			shl32(toU32(20), shr32(toU32(31), instr)),
		),
	)
}

// Fields mirrors fast.Fields, with every value converted back to a native word.
type Fields struct {
	Opcode uint32 `json:"opcode"`
	Rd     uint32 `json:"rd"`
	Funct3 uint32 `json:"funct3"`
	Rs1    uint32 `json:"rs1"`
	Rs2    uint32 `json:"rs2"`
	Funct7 uint32 `json:"funct7"`

	ImmI uint32 `json:"immI"`
	ImmS uint32 `json:"immS"`
	ImmB uint32 `json:"immB"`
	ImmU uint32 `json:"immU"`
	ImmJ uint32 `json:"immJ"`
}

func ParseFields(instr uint32) Fields {
	in := FromUint32(instr)
	return Fields{
		Opcode: Val(parseOpcode(in)),
		Rd:     Val(parseRd(in)),
		Funct3: Val(parseFunct3(in)),
		Rs1:    Val(parseRs1(in)),
		Rs2:    Val(parseRs2(in)),
		Funct7: Val(parseFunct7(in)),
		ImmI:   Val(parseImmTypeI(in)),
		ImmS:   Val(parseImmTypeS(in)),
		ImmB:   Val(parseImmTypeB(in)),
		ImmU:   Val(parseImmTypeU(in)),
		ImmJ:   Val(parseImmTypeJ(in)),
	}
}
