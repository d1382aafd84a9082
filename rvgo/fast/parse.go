package fast

// Functions to parse the instruction field values from the different RV32I instruction formats.
// These must 1:1 match with the same definitions in the slow package.

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

// arithmetic shift, the sign bit of the word is kept
func parseImmTypeI(instr U32) U32 {
	return sar32(toU32(20), instr)
}

// imm[11:5] from instr[31:25], imm[4:0] from instr[11:7]
func parseImmTypeS(instr U32) U32 {
	return or32(
		shl32(toU32(5), shr32(toU32(25), instr)),
		and32(shr32(toU32(7), instr), toU32(0x1F)),
	)
}

// imm[12|10:5|4:1|11], zero-extended, bit 0 is always 0
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

// upper 20 bits, left in place
func parseImmTypeU(instr U32) U32 {
	return and32(instr, 0xFFFF_F000)
}

// imm[20|10:1|11|19:12], zero-extended, bit 0 is always 0
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

// Fields holds every field of an instruction word, whether or not the format of the
// instruction makes use of it. Reading an immediate of a format the opcode does not
// belong to gives a meaningless value.
type Fields struct {
	Opcode U32 `json:"opcode"`
	Rd     U32 `json:"rd"`
	Funct3 U32 `json:"funct3"`
	Rs1    U32 `json:"rs1"`
	Rs2    U32 `json:"rs2"`
	Funct7 U32 `json:"funct7"`

	ImmI U32 `json:"immI"` // two's complement, already sign-extended
	ImmS U32 `json:"immS"`
	ImmB U32 `json:"immB"`
	ImmU U32 `json:"immU"`
	ImmJ U32 `json:"immJ"`
}

// ParseFields extracts all fields of the given instruction word. Every field is
// re-extracted from the raw word, so no field depends on another.
func ParseFields(instr U32) Fields {
	return Fields{
		Opcode: parseOpcode(instr),
		Rd:     parseRd(instr),
		Funct3: parseFunct3(instr),
		Rs1:    parseRs1(instr),
		Rs2:    parseRs2(instr),
		Funct7: parseFunct7(instr),
		ImmI:   parseImmTypeI(instr),
		ImmS:   parseImmTypeS(instr),
		ImmB:   parseImmTypeB(instr),
		ImmU:   parseImmTypeU(instr),
		ImmJ:   parseImmTypeJ(instr),
	}
}

// OffsetI is the I-type immediate as a signed value.
func (f Fields) OffsetI() int32 {
	return int32(f.ImmI)
}

// OffsetS is the S-type immediate, sign-extended from bit 11.
func (f Fields) OffsetS() int32 {
	return int32(signExtend32(f.ImmS, toU32(11)))
}

// OffsetB is the branch offset in bytes, sign-extended from bit 12.
func (f Fields) OffsetB() int32 {
	return int32(signExtend32(f.ImmB, toU32(12)))
}

// OffsetJ is the jump offset in bytes, sign-extended from bit 20.
func (f Fields) OffsetJ() int32 {
	return int32(signExtend32(f.ImmJ, toU32(20)))
}

// Shamt is the shift amount of SLLI/SRLI/SRAI.
func (f Fields) Shamt() U32 {
	return and32(f.ImmI, toU32(0x1F))
}

// CSR is the 12 bit CSR address of the Zicsr instructions.
func (f Fields) CSR() U32 {
	return and32(f.ImmI, shortToU32(0xFFF))
}

// selector reassembles the bits the mnemonic table dispatches on:
// opcode, funct3 and instr[31:20], which is funct7 and rs2 together.
func (f Fields) selector() U32 {
	return or32(
		or32(f.Opcode, shl32(toU32(12), f.Funct3)),
		or32(shl32(toU32(20), f.Rs2), shl32(toU32(25), f.Funct7)),
	)
}
