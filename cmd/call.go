package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"github.com/tyck/tyck/frontend/tyerr"
	"github.com/tyck/tyck/frontend/value"
	"github.com/tyck/tyck/internal/log"
	"github.com/tyck/tyck/tyck"
)

var CallCmd = &cobra.Command{
	Use:          "call \"<signature>\" \"<go-func-src>\" [json-arg...]",
	Short:        "Guard a Go function with a signature and call it",
	Long: `call evaluates a Go function expression, wraps it with the compiled
signature, and invokes it with the given JSON-decoded arguments:

  tyck call "(number, number) => number" "func(a, b float64) float64 { return a + b }" 2 3`,
	RunE:         runCall,
	Args:         cobra.MinimumNArgs(2),
	SilenceUsage: true,
}

var callLogLevel *int

func init() {
	callLogLevel = CallCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runCall(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*callLogLevel))

	sig, err := tyck.CompileSignature(args[0])
	if err != nil {
		return formatted(err)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return errors.Wrap(err, "could not load interpreter stdlib")
	}
	fn, err := i.Eval(args[1])
	if err != nil {
		return errors.Wrap(err, "could not evaluate function source")
	}

	guarded, err := sig.Wrap(fn.Interface())
	if err != nil {
		return formatted(err)
	}

	callArgs := make([]any, len(args)-2)
	for n, raw := range args[2:] {
		if err := json.Unmarshal([]byte(raw), &callArgs[n]); err != nil {
			return errors.Wrapf(err, "malformed JSON argument %d", n+1)
		}
	}

	result, err := guarded.Call(callArgs...)
	if err != nil {
		return formatted(err)
	}
	if value.IsAbsent(result) {
		return nil
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "could not encode result")
	}
	fmt.Println(string(encoded))
	return nil
}

// formatted renders tyck errors with their code, and leaves everything
// else untouched.
func formatted(err error) error {
	if tErr, ok := err.(tyerr.Error); ok {
		return fmt.Errorf("%s: %s", tErr.Code().Category(), tyerr.FormatWithCode(tErr))
	}
	return err
}
