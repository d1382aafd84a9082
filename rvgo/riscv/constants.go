package riscv

// Base opcodes, instr[6:0]
const (
	OpcodeLoad    = 0x03 // 000_0011
	OpcodeMiscMem = 0x0F // 000_1111
	OpcodeOpImm   = 0x13 // 001_0011
	OpcodeAUIPC   = 0x17 // 001_0111
	OpcodeStore   = 0x23 // 010_0011
	OpcodeOp      = 0x33 // 011_0011
	OpcodeLUI     = 0x37 // 011_0111
	OpcodeBranch  = 0x63 // 110_0011
	OpcodeJALR    = 0x67 // 110_0111
	OpcodeJAL     = 0x6F // 110_1111
	OpcodeSystem  = 0x73 // 111_0011

	// funct7 of the base and alternate (SUB, SRA, SRAI) R-type encodings
	Funct7Base = 0x00
	Funct7Alt  = 0x20

	// immI selectors of the ECALL / EBREAK pair, both funct3 = 000 under OpcodeSystem
	ImmECALL  = 0x000
	ImmEBREAK = 0x001

	NumRegisters = 32
)

// Unimplemented is rendered for any word that does not resolve to a mnemonic.
const Unimplemented = "Unimplemented opcode"

// ABINames are the calling-convention aliases of x0..x31.
var ABINames = [NumRegisters]string{
	"zero", "ra", "sp", "gp", "tp",
	"t0", "t1", "t2",
	"s0", "s1",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
	"t3", "t4", "t5", "t6",
}
