package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethereum-optimism/optimism/op-service/ioutil"
	"github.com/ethereum-optimism/optimism/op-service/jsonutil"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/rv32dis/rvgo/fast"
)

var OutFilePerm = os.FileMode(0o644)

// Line is one entry of a disassembly listing.
type Line struct {
	Addr   HexU32  `json:"addr"`
	Instr  HexU32  `json:"instr"`
	Op     fast.Op `json:"op"`
	Text   string  `json:"text"`
	Label  string  `json:"label,omitempty"`
	Target *HexU32 `json:"target,omitempty"`
}

// Listing decodes every word of the program.
func Listing(ctx context.Context, prog *Program, syntax fast.Syntax) ([]Line, error) {
	out := make([]Line, 0, len(prog.Words))
	for i, w := range prog.Words {
		if i%4096 == 0 { // don't do the ctx err check too often
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		inst := fast.Decode(w.Instr)
		line := Line{
			Addr:  HexU32(w.Addr),
			Instr: HexU32(w.Instr),
			Op:    inst.Op,
			Text:  inst.Text(syntax),
		}
		if label, ok := prog.Symbols.Label(uint64(w.Addr)); ok {
			line.Label = label
		}
		if target, ok := inst.Target(w.Addr); ok {
			t := HexU32(target)
			line.Target = &t
		}
		out = append(out, line)
	}
	return out, nil
}

// WriteListing writes the lines in objdump-like text form.
func WriteListing(w io.Writer, lines []Line, symbols fast.SortedSymbols) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if line.Label != "" {
			if _, err := fmt.Fprintf(bw, "\n%s <%s>:\n", line.Addr, line.Label); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "%s:  %s  %s", line.Addr, line.Instr, line.Text); err != nil {
			return err
		}
		if line.Target != nil {
			if _, err := fmt.Fprintf(bw, "  # 0x%s", *line.Target); err != nil {
				return err
			}
			if len(symbols) > 0 {
				sym := symbols.FindSymbol(uint64(*line.Target))
				if _, err := fmt.Fprintf(bw, " <%s+0x%x>", sym.Name, uint64(*line.Target)-sym.Value); err != nil {
					return err
				}
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeTextListing(path string, lines []Line, symbols fast.SortedSymbols) error {
	if path == "-" {
		return WriteListing(os.Stdout, lines, symbols)
	}
	f, err := ioutil.OpenCompressed(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, OutFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open output %q: %w", path, err)
	}
	if err := WriteListing(f, lines, symbols); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write listing: %w", err)
	}
	return f.Close()
}

func Disasm(ctx *cli.Context) error {
	if ctx.Bool(PProfCPUFlag.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}
	l, err := loggerFromFlags(ctx, os.Stderr)
	if err != nil {
		return err
	}
	syntax, err := fast.ParseSyntax(ctx.String(SyntaxFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", SyntaxFlag.Name, err)
	}
	prog, err := loadProgram(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	lines, err := Listing(ctx.Context, prog, syntax)
	if err != nil {
		return err
	}
	unknown, compressed := 0, 0
	for _, line := range lines {
		if line.Op == fast.OpUnknown {
			unknown++
			if fast.IsCompressed(uint32(line.Instr)) {
				compressed++
			}
			l.Debug("unimplemented instruction", "addr", line.Addr, "insn", line.Instr)
		}
	}
	if compressed > 0 {
		l.Warn("input contains words with a 16 bit RVC encoding, which are not decoded", "count", compressed)
	}
	l.Info("decoded program",
		"words", len(lines),
		"unimplemented", unknown,
		"symbols", len(prog.Symbols),
		"syntax", syntax,
		"elapsed", time.Since(start),
	)

	jsonPath := ctx.Path(JSONFlag.Name)
	// with the JSON listing on stdout, the text listing is only written when asked for explicitly
	if textPath := ctx.Path(OutputFlag.Name); textPath != "" && (jsonPath != "-" || ctx.IsSet(OutputFlag.Name)) {
		if err := writeTextListing(textPath, lines, prog.Symbols); err != nil {
			return err
		}
	}
	if jsonPath != "" {
		if err := jsonutil.WriteJSON(jsonPath, lines, OutFilePerm); err != nil {
			return fmt.Errorf("failed to write JSON listing: %w", err)
		}
	}
	return nil
}

var DisasmCommand = &cli.Command{
	Name:        "disasm",
	Usage:       "Disassemble RV32I instruction words",
	ArgsUsage:   "[hex words...]",
	Description: "Disassemble RV32I instruction words, given as arguments or loaded from a hex, raw binary or ELF file. Words that match no RV32I encoding are listed as unimplemented.",
	Action:      Disasm,
	Flags: []cli.Flag{
		InputFlag,
		InputFormatFlag,
		BaseFlag,
		SyntaxFlag,
		OutputFlag,
		JSONFlag,
		PProfCPUFlag,
	},
}
