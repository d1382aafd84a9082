package fast

import (
	"fmt"
	"strings"

	"github.com/ethereum-optimism/rv32dis/rvgo/riscv"
)

// Syntax selects how Instruction.Text renders operands.
type Syntax uint8

const (
	// SyntaxPlain is "mnemonic op1 op2 op3", space separated, unsigned B/J/S immediates.
	SyntaxPlain Syntax = iota
	// SyntaxGNU follows objdump: comma separated, signed offsets, hex upper immediates.
	SyntaxGNU
	// SyntaxGNUABI is SyntaxGNU with calling-convention register names.
	SyntaxGNUABI
)

var syntaxNames = map[Syntax]string{
	SyntaxPlain:  "plain",
	SyntaxGNU:    "gnu",
	SyntaxGNUABI: "gnu-abi",
}

func (s Syntax) String() string {
	if name, ok := syntaxNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Syntax(%d)", uint8(s))
}

// ParseSyntax is the inverse of Syntax.String.
func ParseSyntax(name string) (Syntax, error) {
	for s, n := range syntaxNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown syntax %q", name)
}

func plainOperands(f Fields) []string {
	switch f.Opcode {
	case riscv.OpcodeOp:
		return []string{
			fmt.Sprintf("x%02d", f.Rd),
			fmt.Sprintf("x%02d", f.Rs1),
			fmt.Sprintf("x%02d", f.Rs2),
		}
	case riscv.OpcodeJAL:
		return []string{fmt.Sprintf("x%02d", f.Rd), fmt.Sprintf("x%x", f.ImmJ)}
	case riscv.OpcodeJALR:
		return []string{fmt.Sprintf("x%02d", f.Rd), fmt.Sprintf("x%x", f.ImmI)}
	case riscv.OpcodeLoad:
		return []string{fmt.Sprintf("x%d", f.Rd), fmt.Sprintf("%d(x%d)", f.OffsetI(), f.Rs1)}
	case riscv.OpcodeOpImm:
		// shifts keep the funct7 bits in the immediate here, srai by 3 prints 1027
		return []string{fmt.Sprintf("x%d", f.Rd), fmt.Sprintf("x%d", f.Rs1), fmt.Sprintf("%d", f.OffsetI())}
	case riscv.OpcodeStore:
		return []string{fmt.Sprintf("x%d", f.Rs2), fmt.Sprintf("%d(x%d)", f.ImmS, f.Rs1)}
	case riscv.OpcodeBranch:
		return []string{fmt.Sprintf("x%d", f.Rs1), fmt.Sprintf("x%d", f.Rs2), fmt.Sprintf("%d", f.ImmB)}
	case riscv.OpcodeLUI, riscv.OpcodeAUIPC:
		return []string{fmt.Sprintf("x%d", f.Rd), fmt.Sprintf("%d", shr32(toU32(12), f.ImmU))}
	default: // fence, system
		return nil
	}
}

func gnuOperands(op Op, f Fields, abi bool) []string {
	reg := func(r U32) string {
		if abi {
			return riscv.ABINames[r]
		}
		return fmt.Sprintf("x%d", r)
	}
	mem := func(offset int32, base U32) string {
		return fmt.Sprintf("%d(%s)", offset, reg(base))
	}
	switch f.Opcode {
	case riscv.OpcodeOp:
		return []string{reg(f.Rd), reg(f.Rs1), reg(f.Rs2)}
	case riscv.OpcodeJAL:
		return []string{reg(f.Rd), fmt.Sprintf("%d", f.OffsetJ())}
	case riscv.OpcodeJALR:
		return []string{reg(f.Rd), mem(f.OffsetI(), f.Rs1)}
	case riscv.OpcodeLoad:
		return []string{reg(f.Rd), mem(f.OffsetI(), f.Rs1)}
	case riscv.OpcodeOpImm:
		imm := fmt.Sprintf("%d", f.OffsetI())
		if isShiftImm(op) {
			imm = fmt.Sprintf("%d", f.Shamt())
		}
		return []string{reg(f.Rd), reg(f.Rs1), imm}
	case riscv.OpcodeStore:
		return []string{reg(f.Rs2), mem(f.OffsetS(), f.Rs1)}
	case riscv.OpcodeBranch:
		return []string{reg(f.Rs1), reg(f.Rs2), fmt.Sprintf("%d", f.OffsetB())}
	case riscv.OpcodeLUI, riscv.OpcodeAUIPC:
		return []string{reg(f.Rd), fmt.Sprintf("0x%x", shr32(toU32(12), f.ImmU))}
	case riscv.OpcodeMiscMem:
		if op != FENCE {
			return nil
		}
		pred, succ := and32(shr32(toU32(4), f.ImmI), toU32(0xF)), and32(f.ImmI, toU32(0xF))
		if pred == 0xF && succ == 0xF {
			return nil
		}
		return []string{fenceSet(pred) + "," + fenceSet(succ)}
	case riscv.OpcodeSystem:
		csr := fmt.Sprintf("0x%x", f.CSR())
		switch op {
		case CSRRW, CSRRS, CSRRC:
			return []string{reg(f.Rd), csr, reg(f.Rs1)}
		case CSRRWI, CSRRSI, CSRRCI:
			// rs1 holds the 5 bit zero-extended immediate
			return []string{reg(f.Rd), csr, fmt.Sprintf("%d", f.Rs1)}
		}
		return nil
	default:
		return nil
	}
}

func isShiftImm(op Op) bool {
	return op == SLLI || op == SRLI || op == SRAI
}

// fenceSet renders the predecessor or successor bits of a FENCE as a subset of "iorw".
func fenceSet(bits U32) string {
	if bits == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, c := range "iorw" {
		if and32(bits, shl32(U32(3-i), 1)) != 0 {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
