package cmd

import (
	"bytes"
	"context"
	"debug/elf"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/rv32dis/rvgo/fast"
)

func testApp() *cli.App {
	return &cli.App{
		Name:     "rv32dis",
		Flags:    []cli.Flag{LogLevelFlag},
		Commands: []*cli.Command{DisasmCommand, VerifyCommand},
	}
}

func TestListing(t *testing.T) {
	prog := &Program{
		Words: []fast.Word{
			{Addr: 0x1000, Instr: 0x002081B3}, // add x3, x1, x2
			{Addr: 0x1004, Instr: 0xFE208EE3}, // beq x1, x2, -4
			{Addr: 0x1008, Instr: 0x0000007F},
		},
		Symbols: fast.SortedSymbols{
			{Name: "main", Value: 0x1000, Size: 12, Info: elf.ST_INFO(elf.STB_GLOBAL, elf.STT_FUNC)},
		},
	}
	lines, err := Listing(context.Background(), prog, fast.SyntaxPlain)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	require.Equal(t, "main", lines[0].Label)
	require.Equal(t, fast.ADD, lines[0].Op)
	require.Equal(t, "add x03 x01 x02", lines[0].Text)
	require.Nil(t, lines[0].Target)

	require.Equal(t, fast.BEQ, lines[1].Op)
	require.Equal(t, "beq x1 x2 8188", lines[1].Text)
	require.NotNil(t, lines[1].Target)
	require.Equal(t, HexU32(0x1000), *lines[1].Target)

	require.Equal(t, fast.OpUnknown, lines[2].Op)
	require.Equal(t, "Unimplemented opcode", lines[2].Text)

	var out bytes.Buffer
	require.NoError(t, WriteListing(&out, lines, prog.Symbols))
	require.Equal(t, "\n"+
		"00001000 <main>:\n"+
		"00001000:  002081b3  add x03 x01 x02\n"+
		"00001004:  fe208ee3  beq x1 x2 8188  # 0x00001000 <main+0x0>\n"+
		"00001008:  0000007f  Unimplemented opcode\n", out.String())

	gnu, err := Listing(context.Background(), prog, fast.SyntaxGNU)
	require.NoError(t, err)
	require.Equal(t, "beq x1, x2, -4", gnu[1].Text)
}

func TestListingCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Listing(ctx, &Program{Words: []fast.Word{{}}}, fast.SyntaxPlain)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDisasmCommand(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "out.txt")
	jsonPath := filepath.Join(dir, "out.json")

	err := testApp().Run([]string{"rv32dis", "disasm",
		"--syntax", "plain",
		"--base", "0x80",
		"--output", textPath,
		"--json", jsonPath,
		"0x002081b3", "00a00293", "0x00208463", "0x7f", "0x12345237",
	})
	require.NoError(t, err)

	text, err := os.ReadFile(textPath)
	require.NoError(t, err)
	require.Equal(t, ""+
		"00000080:  002081b3  add x03 x01 x02\n"+
		"00000084:  00a00293  addi x5 x0 10\n"+
		"00000088:  00208463  beq x1 x2 8  # 0x00000090\n"+
		"0000008c:  0000007f  Unimplemented opcode\n"+
		"00000090:  12345237  lui x4 74565\n", string(text))

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var lines []struct {
		Addr   string  `json:"addr"`
		Instr  string  `json:"instr"`
		Op     string  `json:"op"`
		Text   string  `json:"text"`
		Target *string `json:"target"`
	}
	require.NoError(t, json.Unmarshal(data, &lines))
	require.Len(t, lines, 5)
	require.Equal(t, "00000084", lines[1].Addr)
	require.Equal(t, "addi", lines[1].Op)
	require.Equal(t, "addi x5 x0 10", lines[1].Text)
	require.NotNil(t, lines[2].Target)
	require.Equal(t, "00000090", *lines[2].Target)
	require.Equal(t, "unknown", lines[3].Op)
}

func TestDisasmCommandInputFile(t *testing.T) {
	dir := t.TempDir()
	elfPath := filepath.Join(dir, "program.elf")
	require.NoError(t, os.WriteFile(elfPath, buildELF(t, elf.EM_RISCV, 0x1_0000, testText), 0644))
	textPath := filepath.Join(dir, "out.txt")

	err := testApp().Run([]string{"rv32dis", "disasm",
		"--syntax", "gnu-abi",
		"--input", elfPath,
		"--input-fmt", "elf",
		"--output", textPath,
	})
	require.NoError(t, err)
	text, err := os.ReadFile(textPath)
	require.NoError(t, err)
	require.Equal(t, ""+
		"00010000:  002081b3  add gp, ra, sp\n"+
		"00010004:  00208463  beq ra, sp, 8  # 0x0001000c\n", string(text))
}

func TestDisasmCommandErrors(t *testing.T) {
	err := testApp().Run([]string{"rv32dis", "disasm", "--syntax", "plain"})
	require.ErrorContains(t, err, "no input")

	err = testApp().Run([]string{"rv32dis", "disasm", "--syntax", "intel", "0x13"})
	require.ErrorContains(t, err, "unknown syntax")

	err = testApp().Run([]string{"rv32dis", "disasm", "--syntax", "plain", "--input", "x.hex", "0x13"})
	require.ErrorContains(t, err, "cannot combine")

	err = testApp().Run([]string{"rv32dis", "disasm", "--syntax", "plain", "nothex"})
	require.ErrorContains(t, err, "argument 0")

	err = testApp().Run([]string{"rv32dis", "--log.level", "loud", "disasm", "--syntax", "plain", "0x13"})
	require.ErrorContains(t, err, "invalid log level")
}

func TestDisasmCommandSyntaxPerRun(t *testing.T) {
	dir := t.TempDir()
	gnuPath := filepath.Join(dir, "gnu.txt")
	plainPath := filepath.Join(dir, "plain.txt")

	require.NoError(t, testApp().Run([]string{"rv32dis", "disasm", "--syntax", "gnu", "--output", gnuPath, "0x002081b3"}))
	require.NoError(t, testApp().Run([]string{"rv32dis", "disasm", "--output", plainPath, "0x002081b3"}))

	gnu, err := os.ReadFile(gnuPath)
	require.NoError(t, err)
	require.Equal(t, "00000000:  002081b3  add x3, x1, x2\n", string(gnu))

	plain, err := os.ReadFile(plainPath)
	require.NoError(t, err)
	require.Equal(t, "00000000:  002081b3  add x03 x01 x02\n", string(plain), "syntax defaults to plain on every run")
}
