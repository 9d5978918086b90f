package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"slate/internal/interp"
	"slate/internal/projectstore"
)

func newFilesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Manage uploaded file metadata",
	}
	cmd.AddCommand(newFilesAddCommand(ctx))
	cmd.AddCommand(newFilesListCommand(ctx))
	return cmd
}

func newFilesAddCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Register a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory", path)
			}

			mimeType := mime.TypeByExtension(filepath.Ext(path))
			kind := kindFlag
			if kind == "" {
				kind = kindFromMime(mimeType)
			}

			return ctx.withStore(func(store *projectstore.Store) error {
				added, err := store.AddFile(cmd.Context(), interp.FileInfo{
					Name:      filepath.Base(path),
					Kind:      kind,
					Src:       path,
					SizeBytes: info.Size(),
					MimeType:  mimeType,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registered %s as %s (%s)\n", path, added.ID, kind)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&kindFlag, "kind", "", "Override the detected kind (image, video, audio, other)")
	return cmd
}

func newFilesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *projectstore.Store) error {
				files, err := store.GetAllFiles(cmd.Context())
				if err != nil {
					return err
				}
				if len(files) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No files registered.")
					return nil
				}
				rows := make([][]string, 0, len(files))
				for _, file := range files {
					rows = append(rows, []string{
						file.ID, file.Name, file.Kind, strconv.FormatInt(file.SizeBytes, 10),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name", "Kind", "Size"}, rows))
				return nil
			})
		},
	}
}

func kindFromMime(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	default:
		return "other"
	}
}
