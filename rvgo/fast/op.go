package fast

import "fmt"

// Op is a RV32I mnemonic. The zero value, OpUnknown, is the result of decoding a word that
// matches no known encoding.
type Op uint8

const (
	OpUnknown Op = iota

	// R-type arithmetic
	ADD
	SUB
	SLL
	SLT
	SLTU
	XOR
	SRL
	SRA
	OR
	AND

	// jumps
	JAL
	JALR

	// loads
	LB
	LH
	LW
	LBU
	LHU

	// I-type arithmetic
	ADDI
	SLTI
	SLTIU
	XORI
	ORI
	ANDI
	SLLI
	SRLI
	SRAI

	FENCE
	FENCEI

	// system
	ECALL
	EBREAK
	CSRRW
	CSRRS
	CSRRC
	CSRRWI
	CSRRSI
	CSRRCI

	// stores
	SB
	SH
	SW

	// branches
	BEQ
	BNE
	BLT
	BGE
	BLTU
	BGEU

	LUI
	AUIPC

	numOps
)

var opNames = [numOps]string{
	OpUnknown: "unknown",
	ADD:       "add",
	SUB:       "sub",
	SLL:       "sll",
	SLT:       "slt",
	SLTU:      "sltu",
	XOR:       "xor",
	SRL:       "srl",
	SRA:       "sra",
	OR:        "or",
	AND:       "and",
	JAL:       "jal",
	JALR:      "jalr",
	LB:        "lb",
	LH:        "lh",
	LW:        "lw",
	LBU:       "lbu",
	LHU:       "lhu",
	ADDI:      "addi",
	SLTI:      "slti",
	SLTIU:     "sltiu",
	XORI:      "xori",
	ORI:       "ori",
	ANDI:      "andi",
	SLLI:      "slli",
	SRLI:      "srli",
	SRAI:      "srai",
	FENCE:     "fence",
	FENCEI:    "fence.i",
	ECALL:     "ecall",
	EBREAK:    "ebreak",
	CSRRW:     "csrrw",
	CSRRS:     "csrrs",
	CSRRC:     "csrrc",
	CSRRWI:    "csrrwi",
	CSRRSI:    "csrrsi",
	CSRRCI:    "csrrci",
	SB:        "sb",
	SH:        "sh",
	SW:        "sw",
	BEQ:       "beq",
	BNE:       "bne",
	BLT:       "blt",
	BGE:       "bge",
	BLTU:      "bltu",
	BGEU:      "bgeu",
	LUI:       "lui",
	AUIPC:     "auipc",
}

func (op Op) String() string {
	if op >= numOps {
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
	return opNames[op]
}

func (op Op) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// Format is one of the six RV32I encoding formats.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatR
	FormatI
	FormatS
	FormatB
	FormatU
	FormatJ
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	default:
		return "?"
	}
}
