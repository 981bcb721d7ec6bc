package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/team-vault/internal/utils"
	"github.com/MKhiriev/team-vault/models"
)

func (a *App) newExportCommand() *cobra.Command {
	var encrypt bool

	cmd := &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write the whole store to a snapshot file",
		Long: `Write every account, personal password and team to a snapshot file
(` + DefaultExportFile + ` by default). With --encrypt the snapshot is sealed under
the passphrase from ` + EnvExportPassphrase + `, or under your master password
when that is empty.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, sess *models.Session) error {
			path := DefaultExportFile
			if len(args) == 1 {
				path = args[0]
			}

			var (
				data []byte
				err  error
			)
			if encrypt {
				bundle, err := a.services.SnapshotService.ExportEncrypted(cmd.Context(), sess, a.getenv(EnvExportPassphrase))
				if err != nil {
					return err
				}
				if data, err = json.MarshalIndent(bundle, "", "  "); err != nil {
					return err
				}
			} else if data, err = a.services.SnapshotService.ExportJSON(cmd.Context()); err != nil {
				return err
			}

			if err = utils.WriteFileAtomic(cmd.Context(), path, data, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			a.success("Exported to %s", path)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&encrypt, "encrypt", false, "encrypt the snapshot")
	return cmd
}

func (a *App) newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Merge a snapshot file into the store",
		Long: `Merge a snapshot file into the store. Nothing local is ever removed or
overwritten: new accounts, passwords, teams and members are added, and an
entry whose id is already known keeps its local version.

Encrypted files are detected; their passphrase is read from
` + EnvExportPassphrase + ` or prompted for.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := utils.ReadFileContext(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			var result models.MergeResult
			if isEncrypted(data) {
				passphrase, err := a.secret(EnvExportPassphrase, "Passphrase: ")
				if err != nil {
					return err
				}
				result, err = a.services.SnapshotService.ImportEncrypted(cmd.Context(), data, passphrase)
				if err != nil {
					return err
				}
			} else if result, err = a.services.SnapshotService.Import(cmd.Context(), data); err != nil {
				return err
			}

			a.printMergeResult(result)
			return nil
		},
	}
}

// isEncrypted reports whether data looks like a cipher bundle rather than a
// plain snapshot.
func isEncrypted(data []byte) bool {
	var probe struct {
		Encrypted *string `json:"encrypted"`
		Version   *string `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Encrypted != nil && probe.Version == nil
}
