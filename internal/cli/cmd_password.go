package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/team-vault/models"
)

// entryFlags are the editable fields of a password entry.
type entryFlags struct {
	title    string
	username string
	password string
	url      string
	notes    string
	team     string
	generate bool
	length   int
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "entry title")
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "login name")
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&f.url, "url", "", "site address")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free text notes")
	cmd.Flags().BoolVarP(&f.generate, "generate", "g", false, "generate a random password")
	cmd.Flags().IntVar(&f.length, "length", 16, "length of a generated password")
}

// apply copies the flags that were set onto e.
func (f *entryFlags) apply(cmd *cobra.Command, e *models.PasswordEntry) {
	changed := cmd.Flags().Changed
	if changed("title") {
		e.Title = f.title
	}
	if changed("username") {
		e.Username = f.username
	}
	if changed("password") {
		e.Password = f.password
	}
	if changed("url") {
		e.URL = f.url
	}
	if changed("notes") {
		e.Notes = f.notes
	}
}

func (a *App) newPasswordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "password",
		Aliases: []string{"pw"},
		Short:   "Manage personal and team passwords",
	}
	cmd.AddCommand(
		a.newPasswordAddCommand(),
		a.newPasswordEditCommand(),
		a.newPasswordListCommand(),
		a.newPasswordShowCommand(),
		a.newPasswordRemoveCommand(),
		a.newPasswordCopyCommand(),
	)
	return cmd
}

func (a *App) newPasswordAddCommand() *cobra.Command {
	var f entryFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a password",
		Example: `  teamvault password add --title GitHub --username alice --generate
  teamvault password add --title "Prod DB" --team 0190c1a2-... --password s3cret`,
		Args: cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, _ []string, sess *models.Session) error {
			var entry models.PasswordEntry
			f.apply(cmd, &entry)

			switch {
			case f.generate:
				pw, err := a.services.Generator.GeneratePassword(f.length)
				if err != nil {
					return err
				}
				entry.Password = pw
			case entry.Password == "":
				pw, err := a.readPassword("Password for the entry: ")
				if err != nil {
					return err
				}
				entry.Password = pw
			}

			saved, err := a.saveEntry(cmd.Context(), sess, f.team, entry)
			if err != nil {
				return err
			}
			a.success("Saved %q (%s)", saved.Title, saved.ID)
			return nil
		}),
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.team, "team", "", "store the entry in this team")
	return cmd
}

func (a *App) newPasswordEditCommand() *cobra.Command {
	var f entryFlags

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of a password",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, sess *models.Session) error {
			entry, err := a.services.VaultService.GetPassword(cmd.Context(), sess, args[0])
			if err != nil {
				return err
			}
			f.apply(cmd, &entry)
			if f.generate {
				if entry.Password, err = a.services.Generator.GeneratePassword(f.length); err != nil {
					return err
				}
			}

			saved, err := a.saveEntry(cmd.Context(), sess, entry.TeamID, entry)
			if err != nil {
				return err
			}
			a.success("Updated %q (%s)", saved.Title, saved.ID)
			return nil
		}),
	}
	f.register(cmd)
	return cmd
}

func (a *App) saveEntry(ctx context.Context, sess *models.Session, teamID string, entry models.PasswordEntry) (models.PasswordEntry, error) {
	if teamID != "" {
		return a.services.TeamService.SaveTeamPassword(ctx, sess, teamID, entry)
	}
	return a.services.VaultService.SavePassword(ctx, sess, entry)
}

func (a *App) newPasswordListCommand() *cobra.Command {
	var filter models.PasswordFilter

	cmd := &cobra.Command{
		Use:     "list [QUERY]",
		Aliases: []string{"ls"},
		Short:   "List visible passwords",
		Long: `List your personal passwords and the passwords of your teams. QUERY matches
title, username and URL, ignoring case.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, sess *models.Session) error {
			if len(args) == 1 {
				filter.Query = args[0]
			}

			listing, err := a.services.VaultService.ListPasswords(cmd.Context(), sess, filter)
			if err != nil {
				return err
			}
			teams, err := a.services.TeamService.ListTeams(cmd.Context(), sess)
			if err != nil {
				return err
			}
			names := make(map[string]string, len(teams))
			for _, t := range teams {
				names[t.ID] = t.Name
			}

			view := filter.View
			if view == "" || view == models.FilterAll || view == models.FilterPersonal {
				a.printEntries(fmt.Sprintf("Personal [%d total]", listing.PersonalCount), listing.Personal, names)
			}
			if view == "" || view == models.FilterAll || view == models.FilterTeam {
				a.printEntries(fmt.Sprintf("Team [%d total]", listing.TeamCount), listing.Team, names)
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&filter.View, "view", models.FilterAll, "all, personal or team")
	cmd.Flags().StringVar(&filter.TeamID, "team", "", "only this team's passwords")
	return cmd
}

func (a *App) newPasswordShowCommand() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a password entry",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, sess *models.Session) error {
			entry, err := a.services.VaultService.GetPassword(cmd.Context(), sess, args[0])
			if err != nil {
				return err
			}
			a.printEntry(entry, reveal)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&reveal, "reveal", "r", false, "print the password in clear")
	return cmd
}

func (a *App) newPasswordRemoveCommand() *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a password",
		Args:    cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, sess *models.Session) error {
			var err error
			if team != "" {
				err = a.services.TeamService.DeleteTeamPassword(cmd.Context(), sess, team, args[0])
			} else {
				err = a.services.VaultService.DeletePassword(cmd.Context(), sess, args[0])
			}
			if err != nil {
				return err
			}
			a.success("Deleted %s", args[0])
			return nil
		}),
	}
	cmd.Flags().StringVar(&team, "team", "", "delete from this team")
	return cmd
}

func (a *App) newPasswordCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy ID",
		Short: "Copy a password to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, sess *models.Session) error {
			entry, err := a.services.VaultService.GetPassword(cmd.Context(), sess, args[0])
			if err != nil {
				return err
			}
			if err = a.copyText(entry.Password); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			a.success("Copied the password of %q", entry.Title)
			return nil
		}),
	}
}
