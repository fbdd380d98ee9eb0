package bitfield

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
)

var (
	logger = slog.New(slogcolor.NewHandler(os.Stderr, &slogcolor.Options{
		Level:         slog.LevelDebug,
		TimeFormat:    "15:04:05.000",
		SrcFileMode:   slogcolor.ShortFile,
		SrcFileLength: 16,
		MsgPrefix:     color.HiWhiteString("|"),
		MsgColor:      color.New(color.FgHiWhite),
		MsgLength:     24,
	}))
)

func init() {
	color.NoColor = false
	slog.SetDefault(logger)
}

// fatalf logs the condition and aborts via panic. Reserved for the
// unrecoverable tier; caller mistakes go through invalidArgf instead.
func fatalf(op, format string, args ...any) {
	err := &FatalError{Op: op, Detail: fmt.Sprintf(format, args...)}
	logger.Error(err.Error())
	panic(err)
}
