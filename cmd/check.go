package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tyck/tyck/internal/log"
	"github.com/tyck/tyck/tyck"
)

var CheckCmd = &cobra.Command{
	Use:          "check \"<type-expr>\" <json-value|->",
	Short:        "Check a JSON value against a type expression",
	RunE:         runCheck,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

var logLevel *int

func init() {
	logLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	pred, err := tyck.Compile(args[0])
	if err != nil {
		return formatted(err)
	}

	raw := []byte(args[1])
	if args[1] == "-" {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return errors.Wrap(err, "could not read value from stdin")
		}
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return errors.Wrap(err, "malformed JSON value")
	}

	if !pred.Check(v) {
		fmt.Printf("fail: value does not satisfy %s\n", pred)
		os.Exit(1)
	}
	fmt.Printf("ok: value satisfies %s\n", pred)
	return nil
}
