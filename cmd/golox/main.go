package main

// Command line driver for the Lox scanner and parser. Scripts are parsed and
// printed back as their syntax tree, there is no evaluation.

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wst7/golox/internal/lox"
)

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "Scanner and parser for the Lox language",
	Long: `golox reads a Lox script, parses it, and prints the resulting syntax
tree in parenthesized prefix notation. Without a script it starts a prompt
that parses one line at a time.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			runPrompt()
			return
		}
		runFile(args[0])
	},
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <script>",
	Short: "Print the token stream of a script",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tokenizeFile(args[0])
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <script>",
	Short: "Print the syntax tree of a script",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runFile(args[0])
	},
}

func main() {
	rootCmd.AddCommand(tokenizeCmd, parseCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(64)
	}
}

func run(script string, reporter lox.Reporter) {
	scanner := lox.NewScanner([]rune(script), reporter)
	tokens := scanner.Scan()
	parser := lox.NewParser(tokens, reporter)
	statements := parser.Parse()
	if reporter.HadError() {
		return
	}
	printer := lox.AstPrinter{}
	fmt.Println(printer.Print(statements))
}

// Run the parser in prompt mode
func runPrompt() {
	reporter := lox.NewSimpleReporter(os.Stderr)
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print("> ")
		if !s.Scan() {
			break
		}
		run(s.Text(), reporter)
		reporter.Reset()
	}
	exitOnError(s.Err(), 1)
}

// Parse the given file as a script
func runFile(fpath string) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 1)

	reporter := lox.NewSimpleReporter(os.Stderr)
	run(string(bytes), reporter)
	exitIf(reporter.HadError(), 65)
}

// Print every token of the given file
func tokenizeFile(fpath string) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 1)

	reporter := lox.NewSimpleReporter(os.Stderr)
	scanner := lox.NewScanner([]rune(string(bytes)), reporter)
	for _, tok := range scanner.Scan() {
		fmt.Println(tok)
	}
	exitIf(reporter.HadError(), 65)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
