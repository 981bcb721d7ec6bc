package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/team-vault/models"
)

func (a *App) newTeamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Create, join and inspect teams",
	}

	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a team and print its invite code",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, sess *models.Session) error {
			team, err := a.services.TeamService.CreateTeam(cmd.Context(), sess, args[0])
			if err != nil {
				return err
			}
			a.success("Created team %q (%s)", team.Name, team.ID)
			fmt.Fprint(a.out, "Invite code: ")
			headerColor.Fprintln(a.out, team.InviteCode)
			return nil
		}),
	}

	join := &cobra.Command{
		Use:   "join CODE",
		Short: "Join a team with its invite code",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, sess *models.Session) error {
			team, err := a.services.TeamService.JoinTeam(cmd.Context(), sess, args[0])
			if err != nil {
				return err
			}
			a.success("Joined team %q (%d members)", team.Name, len(team.Members))
			return nil
		}),
	}

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your teams",
		Args:    cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, _ []string, sess *models.Session) error {
			teams, err := a.services.TeamService.ListTeams(cmd.Context(), sess)
			if err != nil {
				return err
			}
			if len(teams) == 0 {
				dimColor.Fprintln(a.out, "You are not in any team yet.")
				return nil
			}

			tw := newTable(a.out)
			fmt.Fprintln(tw, "ID\tNAME\tINVITE CODE\tMEMBERS\tPASSWORDS")
			for _, t := range teams {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", t.ID, t.Name, t.InviteCode, len(t.Members), len(t.Passwords))
			}
			return tw.Flush()
		}),
	}

	members := &cobra.Command{
		Use:   "members TEAM_ID",
		Short: "List the members of a team",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string, sess *models.Session) error {
			team, err := a.services.TeamService.GetTeam(cmd.Context(), sess, args[0])
			if err != nil {
				return err
			}

			headerColor.Fprintf(a.out, "%s (%d members)\n", team.Name, len(team.Members))
			tw := newTable(a.out)
			fmt.Fprintln(tw, "  EMAIL\tNAME\tROLE")
			for _, m := range team.Members {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", m.Email, m.Name, m.Role)
			}
			return tw.Flush()
		}),
	}

	cmd.AddCommand(create, join, list, members)
	return cmd
}
