package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/life-tools/life-atlas/pkg/models/domain"
	"github.com/life-tools/life-atlas/pkg/services/command"
)

// Dispatcher is the slice of the command service the CLI needs.
type Dispatcher interface {
	SubmitUtterance(ctx context.Context, text string) (command.DispatchResult, error)
	SubmitClarificationAnswer(ctx context.Context, sessionID, answer string) (command.DispatchResult, error)
}

type SayCmd struct {
	dispatcher Dispatcher
	input      io.Reader
	output     io.Writer
}

func NewSayCmd(dispatcher Dispatcher, input io.Reader, output io.Writer) *cobra.Command {
	sc := &SayCmd{dispatcher: dispatcher, input: input, output: output}
	cmd := &cobra.Command{
		Use:   "say <utterance>",
		Short: "Run a natural-language command, answering follow-up questions interactively",
		Args:  cobra.MinimumNArgs(1),
		RunE:  sc.run,
	}
	return cmd
}

func (sc *SayCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 120*time.Second)
	defer cancel()

	res, err := sc.dispatcher.SubmitUtterance(ctx, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("failed to dispatch command: %w", err)
	}

	scanner := bufio.NewScanner(sc.input)
	for res.Outcome.Status == domain.OutcomeNeedsClarification {
		fmt.Fprintf(sc.output, "%s\n> ", res.Outcome.Question)
		if !scanner.Scan() {
			return fmt.Errorf("input closed before the question was answered")
		}

		res, err = sc.dispatcher.SubmitClarificationAnswer(ctx, res.SessionID, scanner.Text())
		if err != nil {
			return fmt.Errorf("failed to submit answer: %w", err)
		}
	}

	switch res.Outcome.Status {
	case domain.OutcomeReady:
		if res.Result != nil && !res.Result.OK {
			return fmt.Errorf("%s", res.Result.Message)
		}
		if res.Result != nil {
			fmt.Fprintln(sc.output, res.Result.Summary)
		}
		return nil
	default:
		fmt.Fprintln(sc.output, res.Outcome.Reason)
		return nil
	}
}
