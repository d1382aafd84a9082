package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/rv32dis/rvgo/fast"
	"github.com/ethereum-optimism/rv32dis/rvgo/slow"
)

// FieldMismatches returns the names of the fields the fast and slow extractors disagree on.
func FieldMismatches(instr uint32) []string {
	f := fast.ParseFields(instr)
	s := fast.Fields(slow.ParseFields(instr))
	pairs := []struct {
		name       string
		fast, slow fast.U32
	}{
		{"opcode", f.Opcode, s.Opcode},
		{"rd", f.Rd, s.Rd},
		{"funct3", f.Funct3, s.Funct3},
		{"rs1", f.Rs1, s.Rs1},
		{"rs2", f.Rs2, s.Rs2},
		{"funct7", f.Funct7, s.Funct7},
		{"immI", f.ImmI, s.ImmI},
		{"immS", f.ImmS, s.ImmS},
		{"immB", f.ImmB, s.ImmB},
		{"immU", f.ImmU, s.ImmU},
		{"immJ", f.ImmJ, s.ImmJ},
	}
	var out []string
	for _, p := range pairs {
		if p.fast != p.slow {
			out = append(out, p.name)
		}
	}
	return out
}

func randomProgram(count int, seed int64) *Program {
	rng := rand.New(rand.NewSource(seed))
	words := make([]fast.Word, count)
	for i := range words {
		words[i] = fast.Word{Addr: fast.U32(4 * i), Instr: rng.Uint32()}
	}
	return &Program{Words: words}
}

func Verify(ctx *cli.Context) error {
	l, err := loggerFromFlags(ctx, os.Stderr)
	if err != nil {
		return err
	}
	var prog *Program
	if ctx.Args().Len() > 0 || ctx.IsSet(InputFlag.Name) {
		prog, err = loadProgram(ctx)
		if err != nil {
			return err
		}
	} else {
		count, seed := ctx.Int(CountFlag.Name), ctx.Int64(SeedFlag.Name)
		if count < 0 {
			return fmt.Errorf("--%s must not be negative, got %d", CountFlag.Name, count)
		}
		l.Info("no input given, verifying random words", "count", count, "seed", seed)
		prog = randomProgram(count, seed)
	}

	mismatches := 0
	for i, w := range prog.Words {
		if i%4096 == 0 {
			if err := ctx.Context.Err(); err != nil {
				return err
			}
		}
		if fields := FieldMismatches(w.Instr); len(fields) > 0 {
			mismatches++
			l.Error("field extraction mismatch", "addr", HexU32(w.Addr), "insn", HexU32(w.Instr), "fields", fields)
		}
	}
	l.Info("verified field extraction", "words", len(prog.Words), "mismatches", mismatches)
	if mismatches > 0 {
		return fmt.Errorf("%d of %d words were decoded differently by the fast and slow extractors", mismatches, len(prog.Words))
	}
	return nil
}

var VerifyCommand = &cli.Command{
	Name:        "verify",
	Usage:       "Cross-check the native field extractor against the uint256 one",
	ArgsUsage:   "[hex words...]",
	Description: "Decode the fields of every input word with both the native and the uint256-backed extractor and report any difference. Random words are checked when no input is given.",
	Action:      Verify,
	Flags: []cli.Flag{
		InputFlag,
		InputFormatFlag,
		BaseFlag,
		CountFlag,
		SeedFlag,
	},
}
