package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/humbornjo/rematch"
)

func main() {
	// A missing .env is fine, the environment may be set already.
	_ = godotenv.Load()

	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var builtins *rematch.Builtins

	root := &cobra.Command{
		Use:           "rematch",
		Short:         "Run the ?matches and ?replace builtins from the shell",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts, err := rematch.ConfigFromEnv()
			if err != nil {
				return err
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
				With().Timestamp().Logger()
			builtins, err = rematch.NewBuiltins(append(opts, rematch.WithLogger(logger))...)
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newMatchCmd(&builtins), newReplaceCmd(&builtins))
	return root
}

func newMatchCmd(builtins **rematch.Builtins) *cobra.Command {
	var letters string
	var index int

	cmd := &cobra.Command{
		Use:   "match <pattern> <subject>",
		Short: "Test a subject against a pattern and list its matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := (*builtins).Match(args[1], args[0], letters)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("index") {
				m, err := ms.Match(index)
				if err != nil {
					return err
				}
				printMatch(out, index, m)
				return nil
			}

			entire, err := ms.AsBoolean()
			if err != nil {
				return err
			}
			groups, err := ms.Groups()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "entire: %t %s\n", entire, formatGroups(groups))

			n := 0
			for m, err := range ms.All() {
				if err != nil {
					return err
				}
				printMatch(out, n, m)
				n++
			}
			fmt.Fprintf(out, "count: %d\n", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&letters, "flags", "F", "", "flag letters, e.g. \"im\"")
	cmd.Flags().IntVarP(&index, "index", "n", 0, "print only the match at this index")
	return cmd
}

func newReplaceCmd(builtins **rematch.Builtins) *cobra.Command {
	var letters string

	cmd := &cobra.Command{
		Use:   "replace <subject> <needle> <replacement>",
		Short: "Replace a literal needle, or a pattern with the \"r\" flag",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := (*builtins).ReplaceString(args[0], args[1], args[2], letters)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&letters, "flags", "F", "", "flag letters, e.g. \"rf\"")
	return cmd
}

func printMatch(w io.Writer, i int, m *rematch.Match) {
	fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", i, m.Index(), strconv.Quote(m.String()), formatGroups(m.Groups()))
}

func formatGroups(groups rematch.Groups) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if s, ok := g.Value(); ok {
			parts = append(parts, strconv.Quote(s))
		} else {
			parts = append(parts, "<absent>")
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
