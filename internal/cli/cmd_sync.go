package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/team-vault/internal/workers"
	"github.com/MKhiriev/team-vault/models"
)

var errNoSyncFile = errors.New("no sync file: pass FILE, --sync-file or TEAMVAULT_SYNC_FILE")

func (a *App) newSyncCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "sync [FILE]",
		Short: "Merge a shared snapshot file and write the result back",
		Long: `Merge the shared snapshot file into the store, then rewrite the file with the
merged store. Every device that syncs against the same file ends up with the
same records. With --watch the sync repeats every --sync-interval until
interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Sync.File
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errNoSyncFile
			}

			if !watch {
				result, err := a.services.FileSyncService.Sync(cmd.Context(), path)
				if err != nil {
					return err
				}
				a.printMergeResult(result)
				a.success("Synced with %s", path)
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := workers.NewFileSyncWorker(a.services.FileSyncService, path, a.cfg.Sync.Interval)
			w.OnResult = func(r models.MergeResult) {
				if r.Changed() {
					a.printMergeResult(r)
				}
			}

			a.success("Watching %s every %s (Ctrl+C to stop)", path, a.cfg.Sync.Interval)
			return workers.NewWorkers(w).Run(ctx)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep syncing until interrupted")
	return cmd
}
