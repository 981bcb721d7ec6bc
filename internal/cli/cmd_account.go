package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/team-vault/models"
)

func (a *App) newRegisterCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long: `Create an account in the local store. The first account of a store is an
administrator.

The master password is read from ` + EnvPassword + ` or asked twice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, err := a.email(cmd)
			if err != nil {
				return err
			}
			password, err := a.confirmPassword(EnvPassword, "Master password: ")
			if err != nil {
				return err
			}

			sess, err := a.services.AuthService.Register(cmd.Context(), email, name, password)
			if err != nil {
				return err
			}
			defer a.services.AuthService.Logout(sess)

			a.success("Registered %s (%s)", sess.Email(), sess.Profile().Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	return cmd
}

func (a *App) newLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check credentials and show the account",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, _ []string, sess *models.Session) error {
			p := sess.Profile()
			a.success("Logged in as %s <%s>", p.Name, p.Email)
			fmt.Fprintf(a.out, "Role:  %s\n", p.Role)
			fmt.Fprintf(a.out, "Teams: %d\n", len(p.Teams))
			return nil
		}),
	}
}

func (a *App) newPasswdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the master password",
		Long: `Change the master password. The new one is read from ` + EnvNewPassword + `
or asked twice.`,
		Args: cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, _ []string, sess *models.Session) error {
			next, err := a.confirmPassword(EnvNewPassword, "New master password: ")
			if err != nil {
				return err
			}

			current := sess.MasterKey()
			fresh, err := a.services.AuthService.ChangePassword(cmd.Context(), sess, current, next)
			if err != nil {
				return err
			}
			defer a.services.AuthService.Logout(fresh)

			a.success("Master password changed")
			return nil
		}),
	}
}

func (a *App) newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Administer accounts (admin only)",
	}

	status := func(use, short, value string) *cobra.Command {
		return &cobra.Command{
			Use:   use + " EMAIL",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: a.withSession(func(cmd *cobra.Command, args []string, sess *models.Session) error {
				if err := a.services.AuthService.SetUserStatus(cmd.Context(), sess, args[0], value); err != nil {
					return err
				}
				a.success("%s is now %s", models.NormalizeEmail(args[0]), value)
				return nil
			}),
		}
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, _ []string, sess *models.Session) error {
			users, err := a.services.AuthService.ListUsers(cmd.Context(), sess)
			if err != nil {
				return err
			}

			tw := newTable(a.out)
			fmt.Fprintln(tw, "EMAIL\tNAME\tROLE\tTEAMS\tREGISTERED")
			for _, u := range users {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", u.Email, u.Name, u.Role, len(u.Teams), u.CreatedAt.Local().Format("2006-01-02"))
			}
			return tw.Flush()
		}),
	}

	cmd.AddCommand(
		list,
		status("disable", "Disable an account", models.StatusDisabled),
		status("enable", "Enable an account", models.StatusActive),
	)
	return cmd
}
