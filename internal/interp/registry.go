package interp

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sort"
	"strings"

	"slate/internal/comp"
)

// Command describes one registered slash command.
type Command struct {
	Name    string
	Summary string
	Usage   string
	// Confirm marks destructive commands the host should confirm before
	// dispatching.
	Confirm bool
	// NeedsProject rejects dispatch with a not-found failure when no
	// document is loaded.
	NeedsProject bool
	Run          func(*Context) (*Outcome, error)
}

// Registry maps command names to handlers.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command, replacing any previous entry with the same name.
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name] = cmd
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[strings.TrimPrefix(strings.ToLower(name), "/")]
	return cmd, ok
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Dispatch routes one tokenized command line to its handler. tokens[0] is
// the command name with or without the leading slash; the caller owns
// tokenization and quoting. The returned project is nil when the document
// was not changed, and the input document is never mutated in place.
//
// No error or panic escapes Dispatch: every failure becomes a Result.
func (r *Registry) Dispatch(ctx context.Context, tokens []string, env Env) (result Result, updated *comp.Project) {
	logger := env.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if len(tokens) == 0 || strings.TrimSpace(tokens[0]) == "" {
		return Result{Message: "Empty command"}, nil
	}

	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(tokens[0])), "/")
	cmd, ok := r.Lookup(name)
	if !ok {
		return Result{Message: fmt.Sprintf("Unknown command %q", name)}, nil
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Error("command handler panicked",
				"command", name,
				"panic", fmt.Sprint(recovered),
				"stack", string(debug.Stack()))
			result = failure(internalMessage)
			updated = nil
		}
	}()

	if cmd.NeedsProject && env.Project == nil {
		return failure("No project loaded"), nil
	}

	handlerCtx := &Context{
		Ctx:             ctx,
		Project:         env.Project,
		Files:           env.Files,
		ToggleFilePanel: env.ToggleFilePanel,
		Logger:          logger.With("command", name),
		Args:            tokens[1:],
	}

	outcome, err := cmd.Run(handlerCtx)
	if err != nil {
		if IsUserFacing(err) {
			return failure(err.Error()), nil
		}
		logger.Error("command failed", "command", name, "error", err)
		return failure(internalMessage), nil
	}

	result = Result{
		Success:   true,
		Message:   outcome.Message,
		Handled:   true,
		CreatedID: outcome.CreatedID,
		Changes:   outcome.Changes,
		Table:     outcome.Table,
	}
	return result, outcome.Project
}

const internalMessage = "Something went wrong while running the command. Check the logs for details."

func failure(message string) Result {
	return Result{Success: false, Message: message, Handled: true}
}
