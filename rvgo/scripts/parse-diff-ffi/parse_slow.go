package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ethereum-optimism/rv32dis/rvgo/fast"
	"github.com/ethereum-optimism/rv32dis/rvgo/slow"
)

// Prints one field of an instruction word, as extracted by the slow or the fast package,
// so external tooling can diff the two.
func main() {
	function := flag.String("fuzz", "ParseTypeI", "field extractor to run")
	input := flag.Uint64("number", 0, "instruction word to parse")
	useFast := flag.Bool("fast", false, "use the native extractor instead of the uint256 one")
	flag.Parse()

	if *input > 0xFFFF_FFFF {
		fmt.Fprintf(os.Stderr, "instruction word %x does not fit in 32 bits\n", *input)
		os.Exit(2)
	}
	instr := uint32(*input)

	var result uint32
	if *useFast {
		fn, ok := fastParsers[*function]
		if !ok {
			panic("unknown input")
		}
		result = fn(instr)
	} else {
		fn, ok := slowParsers[*function]
		if !ok {
			panic("unknown input")
		}
		result = slow.Val(fn(slow.FromUint32(instr)))
	}
	fmt.Printf("%08x", result)
}

var slowParsers = map[string]func(slow.U32) slow.U32{
	"ParseTypeI":  slow.ParseImmTypeI,
	"ParseTypeS":  slow.ParseImmTypeS,
	"ParseTypeB":  slow.ParseImmTypeB,
	"ParseTypeU":  slow.ParseImmTypeU,
	"ParseTypeJ":  slow.ParseImmTypeJ,
	"ParseOpcode": slow.ParseOpcode,
	"ParseRd":     slow.ParseRd,
	"ParseFunct3": slow.ParseFunct3,
	"ParseRs1":    slow.ParseRs1,
	"ParseRs2":    slow.ParseRs2,
	"ParseFunct7": slow.ParseFunct7,
}

var fastParsers = map[string]func(fast.U32) fast.U32{
	"ParseTypeI":  fast.ParseImmTypeI,
	"ParseTypeS":  fast.ParseImmTypeS,
	"ParseTypeB":  fast.ParseImmTypeB,
	"ParseTypeU":  fast.ParseImmTypeU,
	"ParseTypeJ":  fast.ParseImmTypeJ,
	"ParseOpcode": fast.ParseOpcode,
	"ParseRd":     fast.ParseRd,
	"ParseFunct3": fast.ParseFunct3,
	"ParseRs1":    fast.ParseRs1,
	"ParseRs2":    fast.ParseRs2,
	"ParseFunct7": fast.ParseFunct7,
}
