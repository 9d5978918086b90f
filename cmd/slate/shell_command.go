package main

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"slate/internal/projectstore"
)

func newShellCommand(ctx *commandContext) *cobra.Command {
	var projectFlag string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive command shell for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// One interactive session per data dir; a second shell editing
			// the same database would silently lose writes.
			lock := flock.New(filepath.Join(cfg.Paths.DataDir, "shell.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire shell lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another slate shell is already running against %s", cfg.Paths.DataDir)
			}
			defer lock.Unlock()

			return ctx.withStore(func(store *projectstore.Store) error {
				session, err := newSession(ctx, store, projectFlag)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Editing %s. Type /help for commands, exit to leave.\n", session.project.Name)

				scanner := bufio.NewScanner(cmd.InOrStdin())
				for {
					fmt.Fprint(out, "slate> ")
					if !scanner.Scan() {
						fmt.Fprintln(out)
						return scanner.Err()
					}
					line := strings.TrimSpace(scanner.Text())
					switch line {
					case "":
						continue
					case "exit", "quit":
						return nil
					}

					confirm := confirmPolicy{ask: func(prompt string) bool {
						fmt.Fprint(out, prompt)
						if !scanner.Scan() {
							return false
						}
						answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
						return answer == "y" || answer == "yes"
					}}
					result, err := session.execute(cmd.Context(), line, confirm)
					if err != nil {
						fmt.Fprintf(out, "error: %v\n", err)
						continue
					}
					printResult(out, result)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&projectFlag, "project", "p", "", "Project id")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
