package cmd

import (
	"bytes"
	"debug/elf"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ethereum-optimism/optimism/op-service/ioutil"
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/rv32dis/rvgo/fast"
)

// Program is a loaded sequence of instruction words, with the ELF symbols if there were any.
type Program struct {
	Words   []fast.Word
	Symbols fast.SortedSymbols
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return ioutil.OpenDecompressed(path)
}

// LoadProgram reads the program from r in the given input format.
func LoadProgram(r io.Reader, format string, base fast.U32) (*Program, error) {
	switch format {
	case "hex":
		words, err := fast.ParseHexWords(r, base)
		if err != nil {
			return nil, err
		}
		return &Program{Words: words}, nil
	case "bin":
		words, err := fast.ReadWords(r, base)
		if err != nil {
			return nil, err
		}
		return &Program{Words: words}, nil
	case "elf":
		// debug/elf needs random access, which a decompressing reader does not offer
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read ELF: %w", err)
		}
		f, err := elf.NewFile(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse ELF: %w", err)
		}
		defer f.Close()
		words, err := fast.LoadELF(f)
		if err != nil {
			return nil, fmt.Errorf("failed to load ELF: %w", err)
		}
		symbols, err := fast.Symbols(f)
		if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
			return nil, err
		}
		return &Program{Words: words, Symbols: symbols}, nil
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// loadProgram takes the words from the positional arguments, or else from the input flag.
func loadProgram(ctx *cli.Context) (*Program, error) {
	base := fast.U32(ctx.Uint64(BaseFlag.Name))
	if args := ctx.Args().Slice(); len(args) > 0 {
		if ctx.IsSet(InputFlag.Name) {
			return nil, fmt.Errorf("cannot combine --%s with words given as arguments", InputFlag.Name)
		}
		words := make([]fast.Word, 0, len(args))
		for i, arg := range args {
			instr, err := fast.ParseHexWord(arg)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			words = append(words, fast.Word{Addr: base + fast.U32(4*i), Instr: instr})
		}
		return &Program{Words: words}, nil
	}
	path := ctx.Path(InputFlag.Name)
	if path == "" {
		return nil, fmt.Errorf("no input: pass instruction words as arguments or set --%s", InputFlag.Name)
	}
	r, err := openInput(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %q: %w", path, err)
	}
	defer r.Close()
	prog, err := LoadProgram(r, ctx.String(InputFormatFlag.Name), base)
	if err != nil {
		return nil, fmt.Errorf("failed to load input %q: %w", path, err)
	}
	return prog, nil
}
