// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/tazza"
	"gitlab.com/fisherprime/tazza/lexer"
)

var (
	debug      bool
	permissive bool
	getC       bool
	workers    int

	logger = logrus.New()
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&permissive, "permissive", false, "Emit Unknown tokens instead of failing on unrecognized symbols")
	rootCmd.PersistentFlags().BoolVar(&getC, "getc", false, "Get C transpiled code")
	buildCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of files scanned concurrently (0: one per CPU)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(runCmd)
}

var rootCmd = &cobra.Command{
	Use:   "tazza",
	Short: "Tazza is a programming language",
	Long: `Tazza is a programming language.

Commands:
    build      Compile code
    run        Compile and execute code
Options:
    --getc     Get C transpiled code`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		if debug {
			logger.SetLevel(logrus.DebugLevel)
		}
	},
}

var buildCmd = &cobra.Command{
	Use:   "build [file.tz]...",
	Short: "Compile code",
	Long:  `Scan one or more .tz files and print their token streams.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if _, err := tazza.NewInvocation(
				tazza.WithCommand(tazza.CommandBuild), tazza.WithFilePath(path), tazza.WithGetC(getC),
			); err != nil {
				return err
			}
		}

		results, err := tazza.ScanFiles(cmd.Context(), newLexer(), args, workers)
		if err != nil {
			return err
		}

		for _, resl := range results {
			if resl.Err != nil {
				return resl.Err
			}

			if len(results) > 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", resl.Path)
			}
			if err = printTokens(cmd.OutOrStdout(), resl.Tokens); err != nil {
				return err
			}
		}

		if getC {
			logger.Warn("C output is not available")
		}

		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run [file.tz]",
	Short: "Compile and execute code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := tazza.NewInvocation(
			tazza.WithCommand(tazza.CommandRun), tazza.WithFilePath(args[0]), tazza.WithGetC(getC),
		)
		if err != nil {
			return err
		}

		_, err = tazza.Process(cmd.Context(), newLexer(), inv)

		return err
	},
}

func newLexer() *lexer.Lexer {
	return lexer.New(
		lexer.WithLogger(logger),
		lexer.WithDebug(debug),
		lexer.WithPermissive(permissive),
	)
}

// printTokens writes one Token per line, positions 1-based.
func printTokens(w io.Writer, tokens []lexer.Token) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, t := range tokens {
		fmt.Fprintf(tw, "%d:%d\t%s\t%s\n", t.Row+1, t.Col+1, t.Kind, t.Text)
	}

	return tw.Flush()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
