package cli

import (
	"fmt"
	"os"

	"beerrank-cli/internal/docs"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation (keys, sorting, sources)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": docs.Topics()}})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, errUnknownTopic(topic, docs.Topics()))
			}

			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}

			if isTerminal(cmd.OutOrStdout()) {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), docs.Render(body, terminalWidth(cmd), docsStyle()))
				return err
			}

			return writeOut(cmd, app, map[string]any{"data": map[string]any{"topic": topic, "markdown": body}})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no JSON envelope)")

	return cmd
}

func terminalWidth(cmd *cobra.Command) int {
	if f, ok := cmd.OutOrStdout().(interface{ Fd() uintptr }); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return min(w, 100)
		}
	}
	return 80
}

func docsStyle() string {
	if os.Getenv("NO_COLOR") != "" {
		return "notty"
	}
	return "dark"
}
