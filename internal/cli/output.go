package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/MKhiriev/team-vault/models"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.Faint)
)

func (a *App) success(format string, args ...any) {
	successColor.Fprintf(a.out, "✓ "+format+"\n", args...)
}

func (a *App) warn(format string, args ...any) {
	warnColor.Fprintf(a.errOut, "! "+format+"\n", args...)
}

// PrintError writes err to w the way the CLI reports failures.
func PrintError(w io.Writer, err error) {
	errorColor.Fprint(w, "Error: ")
	fmt.Fprintln(w, Describe(err))
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func (a *App) printEntries(title string, entries []models.PasswordEntry, teamNames map[string]string) {
	headerColor.Fprintf(a.out, "%s (%d)\n", title, len(entries))
	if len(entries) == 0 {
		dimColor.Fprintln(a.out, "  none")
		return
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "  ID\tTITLE\tUSERNAME\tURL\tTEAM")
	for _, e := range entries {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", e.ID, e.Title, e.Username, e.URL, teamNames[e.TeamID])
	}
	tw.Flush()
}

func (a *App) printEntry(e models.PasswordEntry, reveal bool) {
	password := strings.Repeat("•", 8)
	if reveal {
		password = e.Password
	}

	tw := newTable(a.out)
	fmt.Fprintf(tw, "ID\t%s\n", e.ID)
	fmt.Fprintf(tw, "Title\t%s\n", e.Title)
	fmt.Fprintf(tw, "Username\t%s\n", e.Username)
	fmt.Fprintf(tw, "Password\t%s\n", password)
	if e.URL != "" {
		fmt.Fprintf(tw, "URL\t%s\n", e.URL)
	}
	if e.Notes != "" {
		fmt.Fprintf(tw, "Notes\t%s\n", e.Notes)
	}
	if e.TeamID != "" {
		fmt.Fprintf(tw, "Team\t%s\n", e.TeamID)
	}
	fmt.Fprintf(tw, "Created\t%s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(tw, "Updated\t%s\n", e.UpdatedAt.Local().Format("2006-01-02 15:04"))
	tw.Flush()
}

func (a *App) printMergeResult(r models.MergeResult) {
	if !r.Changed() {
		dimColor.Fprintln(a.out, "Nothing new to merge.")
		return
	}

	a.success("Merged snapshot")
	tw := newTable(a.out)
	fmt.Fprintf(tw, "  users added\t%d\n", r.UsersAdded)
	fmt.Fprintf(tw, "  users updated\t%d\n", r.UsersUpdated)
	fmt.Fprintf(tw, "  passwords added\t%d\n", r.PasswordsAdded)
	fmt.Fprintf(tw, "  teams added\t%d\n", r.TeamsAdded)
	fmt.Fprintf(tw, "  members added\t%d\n", r.MembersAdded)
	fmt.Fprintf(tw, "  team passwords added\t%d\n", r.TeamPasswordsAdded)
	if skipped := r.PasswordsSkipped + r.TeamPasswordsSkipped; skipped > 0 {
		fmt.Fprintf(tw, "  kept local version\t%d\n", skipped)
	}
	tw.Flush()

	for _, id := range r.InviteCodeConflicts {
		a.warn("team %s reuses an invite code of another local team", id)
	}
}

func strengthColor(level string) *color.Color {
	switch level {
	case models.StrengthWeak:
		return color.New(color.FgRed)
	case models.StrengthMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
