package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/session"
)

type asker interface {
	Ask(ctx context.Context, log *session.ChatLog, query string) (domain.ChatTurn, error)
}

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "chat",
		Short: "Ask the travel assistant questions",
		Long: "Reads one question per line from stdin. The conversation lasts until EOF or /quit;\n" +
			"/history prints every exchange so far. Nothing is saved.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			s := a.Sessions.Start()
			defer func() { _ = a.Sessions.End(s.ID) }()
			return runChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.Chat, s.Log, formatFlag)
		},
	})
}

// runChat is the REPL loop. A failed question is reported and the loop goes
// on; the log only grows on success.
func runChat(ctx context.Context, in io.Reader, out io.Writer, a asker, log *session.ChatLog, format string) error {
	sc := bufio.NewScanner(in)
	for {
		if format == formatText {
			fmt.Fprint(out, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/history":
			if err := writeHistory(out, format, log.Turns()); err != nil {
				return err
			}
			continue
		}

		turn, err := a.Ask(ctx, log, line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if format == formatJSON {
			if err := printJSON(out, turn); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, turn.Response)
	}
}

func writeHistory(w io.Writer, format string, turns []domain.ChatTurn) error {
	if format == formatJSON {
		return printJSON(w, turns)
	}
	if len(turns) == 0 {
		_, err := fmt.Fprintln(w, "No questions yet.")
		return err
	}
	for i, t := range turns {
		if _, err := fmt.Fprintf(w, "%d. Q: %s\n   A: %s\n", i+1, t.Query, t.Response); err != nil {
			return err
		}
	}
	return nil
}
