package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/tyck/tyck/frontend/ast"
	"github.com/tyck/tyck/parser"
	"github.com/tyck/tyck/tyck"
)

const (
	historyFile = ".tyck_history"
	promptMain  = "tyck> "
)

const replHelp = `inputs:
  TYPE :: JSON    check a JSON value against a type expression
  :t TYPE         parse a type expression and print its normal form
  :help           show this help
  :quit           exit
`

var ReplCmd = &cobra.Command{
	Use:          "repl",
	Short:        "Interactively check values against type expressions",
	RunE:         runRepl,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

func runRepl(cmd *cobra.Command, args []string) error {
	ln := liner.NewLiner()
	defer func() { _ = ln.Close() }()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completeKeywords)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	fmt.Println("tyck repl; :help for help, :quit to exit")
	for {
		line, err := ln.Prompt(promptMain)
		if err != nil {
			break // EOF or interrupt
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if quit := evalLine(line); quit {
			break
		}
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return nil
}

func evalLine(line string) (quit bool) {
	switch {
	case line == ":quit" || line == ":q":
		return true
	case line == ":help":
		fmt.Print(replHelp)
	case strings.HasPrefix(line, ":t "):
		node, err := parser.ParseType(strings.TrimPrefix(line, ":t "))
		if err != nil {
			fmt.Println(formatted(err))
			return false
		}
		fmt.Println(ast.TypeString(node))
	default:
		expr, rawValue, found := strings.Cut(line, "::")
		if !found {
			fmt.Println("expected 'TYPE :: JSON' or a :command; :help for help")
			return false
		}
		pred, err := tyck.Compile(strings.TrimSpace(expr))
		if err != nil {
			fmt.Println(formatted(err))
			return false
		}
		var v any
		if err := json.Unmarshal([]byte(strings.TrimSpace(rawValue)), &v); err != nil {
			fmt.Printf("malformed JSON value: %s\n", err)
			return false
		}
		if pred.Check(v) {
			fmt.Printf("ok: value satisfies %s\n", pred)
		} else {
			fmt.Printf("fail: value does not satisfy %s\n", pred)
		}
	}
	return false
}

func completeKeywords(line string) []string {
	lastSpace := strings.LastIndexAny(line, " \t([{,|&?")
	head, word := line[:lastSpace+1], line[lastSpace+1:]
	if word == "" {
		return nil
	}
	var out []string
	for keyword := range ast.Keywords.Items() {
		if strings.HasPrefix(keyword, word) {
			out = append(out, head+keyword)
		}
	}
	return out
}
