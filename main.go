package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	outputFlag  string
	verboseFlag bool
	log         = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "toy-compiler <input.toy>",
	Short: "A whole-program compiler for Toy, targeting AArch64 Darwin.",
	Long: "toy-compiler translates a Toy source file to a native AArch64 executable:\n" +
		"it lexes, parses, resolves variable scope, emits assembly, then invokes\n" +
		"the platform assembler and linker to produce the final binary.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configureLogging()
		return RunDriver(DriverOptions{
			InputPath:  args[0],
			OutputPath: outputFlag,
			Log:        log,
		})
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <input.toy>",
	Short: "Lex, parse, and resolve a Toy source file without emitting code.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configureLogging()
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		tokens, diag := Lex(source)
		if diag == nil {
			var prog *Program
			prog, diag = Parse(tokens)
			if diag == nil {
				diag = Resolve(prog)
			}
			if diag == nil {
				fmt.Printf("%s: no errors found\n", args[0])
				if verboseFlag {
					fmt.Println(ProgramToSExpr(prog))
				}
				return nil
			}
		}
		return &compileError{diag: diag, source: string(source), path: args[0]}
	},
}

var asmCmd = &cobra.Command{
	Use:   "asm <input.toy>",
	Short: "Compile a Toy source file to AArch64 assembly text, without assembling or linking.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configureLogging()
		return RunDriver(DriverOptions{
			InputPath:   args[0],
			OutputPath:  outputFlag,
			EmitAsmOnly: true,
			Log:         log,
		})
	},
}

func configureLogging() {
	if verboseFlag {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "show verbose compilation details")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output executable path (default: input path without its extension)")
	asmCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output assembly path (default: input path with a .s extension)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(asmCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
