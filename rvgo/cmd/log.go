package cmd

import (
	"fmt"
	"io"

	"log/slog"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

func Logger(w io.Writer, lvl slog.Level) log.Logger {
	return log.NewLogger(log.LogfmtHandlerWithLevel(w, lvl))
}

// loggerFromFlags builds the stderr logger at the level of the global log.level flag.
func loggerFromFlags(ctx *cli.Context, w io.Writer) (log.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(ctx.String(LogLevelFlag.Name))); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return Logger(w, lvl), nil
}

// HexU32 to lazy-format integer attributes for logging
type HexU32 uint32

func (v HexU32) String() string {
	return fmt.Sprintf("%08x", uint32(v))
}

func (v HexU32) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
