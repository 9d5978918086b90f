package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"

	"slate/internal/comp"
	"slate/internal/interp"
	"slate/internal/projectstore"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var projectFlag string
	var yesFlag bool

	cmd := &cobra.Command{
		Use:   "run \"/command [--flag value]...\"",
		Short: "Run one slash command against a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *projectstore.Store) error {
				session, err := newSession(ctx, store, projectFlag)
				if err != nil {
					return err
				}
				line := strings.Join(args, " ")
				confirm := confirmPolicy{
					assumeYes: yesFlag,
					ask:       stdinConfirm(cmd.InOrStdin(), cmd.OutOrStdout()),
				}
				result, err := session.execute(cmd.Context(), line, confirm)
				if err != nil {
					return err
				}
				printResult(cmd.OutOrStdout(), result)
				if !result.Success {
					return errors.New("command failed")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&projectFlag, "project", "p", "", "Project id")
	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip confirmation prompts")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

// session holds one project across command executions and persists every
// successful mutation.
type session struct {
	ctx      *commandContext
	store    *projectstore.Store
	registry *interp.Registry
	project  *comp.Project
}

func newSession(ctx *commandContext, store *projectstore.Store, projectID string) (*session, error) {
	project, err := store.GetProject(context.Background(), projectID)
	if err != nil {
		return nil, err
	}
	return &session{
		ctx:      ctx,
		store:    store,
		registry: interp.NewDefaultRegistry(),
		project:  project,
	}, nil
}

type confirmPolicy struct {
	assumeYes bool
	// ask prompts the user and reports whether they accepted. A nil ask
	// rejects, so destructive commands cannot slip through untended pipes.
	ask func(prompt string) bool
}

func stdinConfirm(in io.Reader, out io.Writer) func(string) bool {
	return func(prompt string) bool {
		fmt.Fprint(out, prompt)
		reader := bufio.NewReader(in)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}

// execute tokenizes a command line, asks for confirmation when the command
// requires it, dispatches, and persists the updated document.
func (s *session) execute(ctx context.Context, line string, confirm confirmPolicy) (interp.Result, error) {
	tokens, err := shellwords.Parse(line)
	if err != nil {
		return interp.Result{}, fmt.Errorf("parse command line: %w", err)
	}
	if len(tokens) == 0 {
		return interp.Result{Message: "Empty command"}, nil
	}

	if cmd, ok := s.registry.Lookup(tokens[0]); ok && cmd.Confirm && !confirm.assumeYes {
		prompt := fmt.Sprintf("%s is destructive. Continue? [y/N] ", tokens[0])
		if confirm.ask == nil || !confirm.ask(prompt) {
			return interp.Result{Message: "Cancelled", Handled: true}, nil
		}
	}

	logger, err := s.ctx.ensureLogger()
	if err != nil {
		return interp.Result{}, err
	}

	result, updated := s.registry.Dispatch(ctx, tokens, interp.Env{
		Project: s.project,
		Files:   s.store,
		Logger:  logger,
	})
	if updated != nil {
		if err := s.store.SaveProject(ctx, updated); err != nil {
			return interp.Result{}, err
		}
		s.project = updated
	}
	return result, nil
}

