package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"slate/internal/comp"
	"slate/internal/projectstore"
)

func newProjectCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(newProjectNewCommand(ctx))
	cmd.AddCommand(newProjectListCommand(ctx))
	cmd.AddCommand(newProjectShowCommand(ctx))
	cmd.AddCommand(newProjectRemoveCommand(ctx))
	return cmd
}

func newProjectNewCommand(ctx *commandContext) *cobra.Command {
	var fpsFlag, widthFlag, heightFlag int

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			fps := cfg.Project.FPS
			if fpsFlag > 0 {
				fps = fpsFlag
			}
			width, height := cfg.Project.Width, cfg.Project.Height
			if widthFlag > 0 {
				width = widthFlag
			}
			if heightFlag > 0 {
				height = heightFlag
			}

			return ctx.withStore(func(store *projectstore.Store) error {
				project := comp.NewProject(args[0], fps, width, height)
				if err := store.CreateProject(cmd.Context(), project); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%dx%d at %d fps)\n",
					project.ID, width, height, fps)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&fpsFlag, "fps", 0, "Frame rate (defaults to config)")
	cmd.Flags().IntVar(&widthFlag, "width", 0, "Canvas width (defaults to config)")
	cmd.Flags().IntVar(&heightFlag, "height", 0, "Canvas height (defaults to config)")
	return cmd
}

func newProjectListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *projectstore.Store) error {
				summaries, err := store.ListProjects(cmd.Context())
				if err != nil {
					return err
				}
				if len(summaries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No projects yet. Create one with `slate project new`.")
					return nil
				}
				rows := make([][]string, 0, len(summaries))
				for _, summary := range summaries {
					rows = append(rows, []string{
						summary.ID,
						summary.Name,
						summary.UpdatedAt.Local().Format(time.DateTime),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name", "Updated"}, rows))
				return nil
			})
		},
	}
}

func newProjectShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a project document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *projectstore.Store) error {
				project, err := store.GetProject(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				encoded, err := json.MarshalIndent(project, "", "  ")
				if err != nil {
					return fmt.Errorf("encode project: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			})
		},
	}
}

func newProjectRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *projectstore.Store) error {
				if err := store.DeleteProject(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])
				return nil
			})
		},
	}
}
