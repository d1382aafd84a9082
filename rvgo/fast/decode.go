package fast

import (
	"fmt"
	"strings"

	"github.com/ethereum-optimism/rv32dis/rvgo/riscv"
)

const (
	maskOpcode = U32(0x0000_007F)
	maskFunct3 = U32(0x0000_7000)
	maskFunct7 = U32(0xFE00_0000)
	maskImmI   = U32(0xFFF0_0000)
)

// An instFormat matches every word w with w&mask == value.
type instFormat struct {
	mask  U32
	value U32
	op    Op
}

func enc(opcode, funct3, funct7 U32) U32 {
	return or32(or32(opcode, shl32(toU32(12), funct3)), shl32(toU32(25), funct7))
}

func byOpcode(opcode U32, op Op) instFormat {
	return instFormat{mask: maskOpcode, value: opcode, op: op}
}

func byFunct3(opcode, funct3 U32, op Op) instFormat {
	return instFormat{mask: maskOpcode | maskFunct3, value: enc(opcode, funct3, 0), op: op}
}

func byFunct7(opcode, funct3, funct7 U32, op Op) instFormat {
	return instFormat{mask: maskOpcode | maskFunct3 | maskFunct7, value: enc(opcode, funct3, funct7), op: op}
}

func byImmI(opcode, funct3, imm U32, op Op) instFormat {
	return instFormat{mask: maskOpcode | maskFunct3 | maskImmI, value: or32(enc(opcode, funct3, 0), shl32(toU32(20), imm)), op: op}
}

// No two entries overlap, so the order does not matter for the result.
var instFormats = [...]instFormat{
	// 011_0011: register arithmetic and logic
	byFunct7(riscv.OpcodeOp, 0, riscv.Funct7Base, ADD),
	byFunct7(riscv.OpcodeOp, 0, riscv.Funct7Alt, SUB),
	byFunct3(riscv.OpcodeOp, 1, SLL),
	byFunct3(riscv.OpcodeOp, 2, SLT),
	byFunct3(riscv.OpcodeOp, 3, SLTU),
	byFunct3(riscv.OpcodeOp, 4, XOR),
	byFunct7(riscv.OpcodeOp, 5, riscv.Funct7Base, SRL),
	byFunct7(riscv.OpcodeOp, 5, riscv.Funct7Alt, SRA),
	byFunct3(riscv.OpcodeOp, 6, OR),
	byFunct3(riscv.OpcodeOp, 7, AND),

	byOpcode(riscv.OpcodeJAL, JAL),
	byOpcode(riscv.OpcodeJALR, JALR),

	// 000_0011: memory loading
	byFunct3(riscv.OpcodeLoad, 0, LB),
	byFunct3(riscv.OpcodeLoad, 1, LH),
	byFunct3(riscv.OpcodeLoad, 2, LW),
	byFunct3(riscv.OpcodeLoad, 4, LBU),
	byFunct3(riscv.OpcodeLoad, 5, LHU),

	// 001_0011: immediate arithmetic and logic
	byFunct3(riscv.OpcodeOpImm, 0, ADDI),
	byFunct3(riscv.OpcodeOpImm, 1, SLLI),
	byFunct3(riscv.OpcodeOpImm, 2, SLTI),
	byFunct3(riscv.OpcodeOpImm, 3, SLTIU),
	byFunct3(riscv.OpcodeOpImm, 4, XORI),
	byFunct7(riscv.OpcodeOpImm, 5, riscv.Funct7Base, SRLI),
	byFunct7(riscv.OpcodeOpImm, 5, riscv.Funct7Alt, SRAI),
	byFunct3(riscv.OpcodeOpImm, 6, ORI),
	byFunct3(riscv.OpcodeOpImm, 7, ANDI),

	// 000_1111: fence
	byFunct3(riscv.OpcodeMiscMem, 0, FENCE),
	byFunct3(riscv.OpcodeMiscMem, 1, FENCEI),

	// 111_0011: environment things
	byImmI(riscv.OpcodeSystem, 0, riscv.ImmECALL, ECALL),
	byImmI(riscv.OpcodeSystem, 0, riscv.ImmEBREAK, EBREAK),
	byFunct3(riscv.OpcodeSystem, 1, CSRRW),
	byFunct3(riscv.OpcodeSystem, 2, CSRRS),
	byFunct3(riscv.OpcodeSystem, 3, CSRRC),
	byFunct3(riscv.OpcodeSystem, 5, CSRRWI),
	byFunct3(riscv.OpcodeSystem, 6, CSRRSI),
	byFunct3(riscv.OpcodeSystem, 7, CSRRCI),

	// 010_0011: memory storing
	byFunct3(riscv.OpcodeStore, 0, SB),
	byFunct3(riscv.OpcodeStore, 1, SH),
	byFunct3(riscv.OpcodeStore, 2, SW),

	// 110_0011: branching
	byFunct3(riscv.OpcodeBranch, 0, BEQ),
	byFunct3(riscv.OpcodeBranch, 1, BNE),
	byFunct3(riscv.OpcodeBranch, 4, BLT),
	byFunct3(riscv.OpcodeBranch, 5, BGE),
	byFunct3(riscv.OpcodeBranch, 6, BLTU),
	byFunct3(riscv.OpcodeBranch, 7, BGEU),

	byOpcode(riscv.OpcodeLUI, LUI),
	byOpcode(riscv.OpcodeAUIPC, AUIPC),
}

// lookupOp resolves the mnemonic of the fields, or OpUnknown when no encoding matches.
func lookupOp(f Fields) Op {
	sel := f.selector()
	for i := range instFormats {
		if and32(sel, instFormats[i].mask) == instFormats[i].value {
			return instFormats[i].op
		}
	}
	return OpUnknown
}

// Instruction is a decoded instruction word.
// An Op of OpUnknown marks a word that did not match any RV32I encoding.
type Instruction struct {
	Instr  U32    `json:"instr"`
	Op     Op     `json:"op"`
	Fields Fields `json:"fields"`
}

// Decode extracts the fields of the word and resolves its mnemonic. It never fails.
func Decode(instr U32) Instruction {
	f := ParseFields(instr)
	return Instruction{Instr: instr, Op: lookupOp(f), Fields: f}
}

// Render resolves and renders the fields in plain syntax.
func Render(f Fields) string {
	return Instruction{Op: lookupOp(f), Fields: f}.Text(SyntaxPlain)
}

// Disassemble renders the word in plain syntax.
func Disassemble(instr U32) string {
	return Decode(instr).String()
}

func (inst Instruction) Known() bool {
	return inst.Op != OpUnknown
}

// Format is determined by the opcode alone, regardless of whether the word is Known.
func (inst Instruction) Format() Format {
	switch inst.Fields.Opcode {
	case riscv.OpcodeOp:
		return FormatR
	case riscv.OpcodeLoad, riscv.OpcodeOpImm, riscv.OpcodeJALR, riscv.OpcodeMiscMem, riscv.OpcodeSystem:
		return FormatI
	case riscv.OpcodeStore:
		return FormatS
	case riscv.OpcodeBranch:
		return FormatB
	case riscv.OpcodeLUI, riscv.OpcodeAUIPC:
		return FormatU
	case riscv.OpcodeJAL:
		return FormatJ
	default:
		return FormatUnknown
	}
}

// Target computes the destination of a branch or JAL located at pc.
// Offsets are sign-extended here, unlike the raw ImmB/ImmJ fields.
func (inst Instruction) Target(pc U32) (U32, bool) {
	if !inst.Known() {
		return 0, false
	}
	switch inst.Format() {
	case FormatB:
		return pc + U32(inst.Fields.OffsetB()), true
	case FormatJ:
		return pc + U32(inst.Fields.OffsetJ()), true
	default:
		return 0, false
	}
}

func (inst Instruction) String() string {
	return inst.Text(SyntaxPlain)
}

// Text renders the instruction in the given syntax.
func (inst Instruction) Text(syntax Syntax) string {
	if !inst.Known() {
		if syntax == SyntaxPlain {
			return riscv.Unimplemented
		}
		return fmt.Sprintf(".word 0x%08x", inst.Instr)
	}
	var operands []string
	if syntax == SyntaxPlain {
		operands = plainOperands(inst.Fields)
	} else {
		operands = gnuOperands(inst.Op, inst.Fields, syntax == SyntaxGNUABI)
	}
	if len(operands) == 0 {
		return inst.Op.String()
	}
	sep := " "
	if syntax != SyntaxPlain {
		sep = ", "
	}
	return inst.Op.String() + " " + strings.Join(operands, sep)
}
