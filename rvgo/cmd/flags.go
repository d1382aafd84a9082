package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/rv32dis/rvgo/fast"
)

var (
	InputFlag = &cli.PathFlag{
		Name:      "input",
		Usage:     "path of the program to decode, '-' for stdin. Files ending in .gz are decompressed",
		TakesFile: true,
	}
	InputFormatFlag = &cli.StringFlag{
		Name:  "input-fmt",
		Usage: "format of the input: 'hex' (text words), 'bin' (raw little-endian words) or 'elf' (32 bit RISC-V ELF)",
		Value: "hex",
	}
	BaseFlag = &cli.Uint64Flag{
		Name:  "base",
		Usage: "address of the first word of hex and bin inputs",
		Value: 0,
	}
	SyntaxFlag = &cli.StringFlag{
		Name:  "syntax",
		Usage: "assembly syntax: 'plain', 'gnu' or 'gnu-abi'",
		Value: fast.SyntaxPlain.String(),
	}
	OutputFlag = &cli.PathFlag{
		Name:      "output",
		Usage:     "path of the text listing, '-' for stdout. Files ending in .gz are compressed",
		TakesFile: true,
		Value:     "-",
	}
	JSONFlag = &cli.PathFlag{
		Name:      "json",
		Usage:     "path of a JSON listing, '-' for stdout",
		TakesFile: true,
	}
	PProfCPUFlag = &cli.BoolFlag{
		Name:  "pprof.cpu",
		Usage: "enable CPU profiling, written to the working directory",
	}
	CountFlag = &cli.IntFlag{
		Name:  "count",
		Usage: "number of random words to verify when no input is given",
		Value: 1 << 16,
	}
	SeedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the random words",
		Value: 1,
	}
	LogLevelFlag = &cli.StringFlag{
		Name:    "log.level",
		Usage:   "log level: debug, info, warn or error",
		Value:   "info",
		EnvVars: []string{"RV32DIS_LOG_LEVEL"},
	}
)
