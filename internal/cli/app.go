// Package cli is the command-line host of the vault. It only parses input,
// calls the services and prints their results; every rule lives in the
// service layer.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/team-vault/internal/config"
	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/service"
	"github.com/MKhiriev/team-vault/internal/store"
	"github.com/MKhiriev/team-vault/models"
)

// Environment variables read by the CLI on top of the config ones.
const (
	EnvEmail            = "TEAMVAULT_EMAIL"
	EnvPassword         = "TEAMVAULT_PASSWORD"
	EnvNewPassword      = "TEAMVAULT_NEW_PASSWORD"
	EnvExportPassphrase = "TEAMVAULT_EXPORT_PASSPHRASE"
)

// DefaultExportFile is the file name used by export when none is given.
const DefaultExportFile = "teamvault-db.json"

// annotationNoStore marks commands that run without opening the store.
const annotationNoStore = "teamvault/no-store"

// App holds the IO seams and, once a command starts, the opened store and
// services.
type App struct {
	build models.AppBuildInfo

	in     *bufio.Reader
	stdin  io.Reader
	out    io.Writer
	errOut io.Writer

	getenv       func(string) string
	readPassword func(prompt string) (string, error)
	copyText     func(text string) error

	cfg      *config.StructuredConfig
	log      *logger.Logger
	repo     store.Repository
	services *service.Services
}

// Option customises an App.
type Option func(*App)

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.stdin = in
		a.in = bufio.NewReader(in)
		a.out = out
		a.errOut = errOut
	}
}

// WithGetenv replaces the environment lookup.
func WithGetenv(fn func(string) string) Option {
	return func(a *App) { a.getenv = fn }
}

// WithPasswordReader replaces the hidden password prompt.
func WithPasswordReader(fn func(prompt string) (string, error)) Option {
	return func(a *App) { a.readPassword = fn }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(fn func(text string) error) Option {
	return func(a *App) { a.copyText = fn }
}

// NewApp returns an App wired to the process stdio, environment and the
// system clipboard.
func NewApp(build models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		build:    build,
		stdin:    os.Stdin,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		errOut:   os.Stderr,
		getenv:   os.Getenv,
		copyText: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.readPassword == nil {
		a.readPassword = a.promptPassword
	}
	return a
}

// Execute runs the command line args against a fresh command tree.
func (a *App) Execute(ctx context.Context, args []string) error {
	defer a.close()

	root := a.RootCommand()
	root.SetArgs(args)
	root.SetIn(a.stdin)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	return root.ExecuteContext(ctx)
}

// RootCommand builds the command tree.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "teamvault",
		Short: "Offline password vault for people and teams",
		Long: `TeamVault keeps user accounts, personal passwords and shared team passwords
in a local store. Devices exchange snapshot files to stay in step.

Examples:
  # Create the first (admin) account
  teamvault register --email alice@example.com --name Alice

  # Add and list passwords
  teamvault password add --email alice@example.com --title GitHub --generate
  teamvault password list --email alice@example.com

  # Keep two devices in step through a shared file
  teamvault sync ~/Dropbox/teamvault-db.json --watch`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().StringP("email", "e", "", "account email (or "+EnvEmail+")")

	root.AddCommand(
		a.newRegisterCommand(),
		a.newLoginCommand(),
		a.newPasswdCommand(),
		a.newPasswordCommand(),
		a.newGenerateCommand(),
		a.newStrengthCommand(),
		a.newTeamCommand(),
		a.newExportCommand(),
		a.newImportCommand(),
		a.newSyncCommand(),
		a.newUserCommand(),
		a.newVersionCommand(),
	)
	return root
}

// setup loads the config, then opens the store and builds the services.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logger.NewCLILogger("teamvault", logger.Options{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		Output: a.errOut,
	})
	ctx := a.log.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	if cmd.Annotations[annotationNoStore] != "" || cmd.Name() == "help" {
		return nil
	}

	a.repo, err = store.NewRepository(ctx, cfg.Storage, a.log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.services, err = service.NewServices(a.repo, cfg.App, a.log)
	if err != nil {
		return fmt.Errorf("init services: %w", err)
	}
	return nil
}

func (a *App) close() {
	if a.repo == nil {
		return
	}
	if err := a.repo.Close(); err != nil && a.log != nil {
		a.log.Err(err).Str("func", "App.close").Msg("failed to close store")
	}
	a.repo = nil
}

// email resolves the account email from --email or the environment.
func (a *App) email(cmd *cobra.Command) (string, error) {
	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		email = a.getenv(EnvEmail)
	}
	if email == "" {
		return "", errEmailRequired
	}
	return email, nil
}

// secret returns the value of env, or asks for it with prompt.
func (a *App) secret(env, prompt string) (string, error) {
	if v := a.getenv(env); v != "" {
		return v, nil
	}
	return a.readPassword(prompt)
}

// login opens a session for the account named on the command line.
func (a *App) login(cmd *cobra.Command) (*models.Session, error) {
	email, err := a.email(cmd)
	if err != nil {
		return nil, err
	}
	password, err := a.secret(EnvPassword, "Master password: ")
	if err != nil {
		return nil, err
	}
	return a.services.AuthService.Login(cmd.Context(), email, password)
}

// withSession runs fn with a logged-in session and logs out afterwards.
func (a *App) withSession(fn func(cmd *cobra.Command, args []string, sess *models.Session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		sess, err := a.login(cmd)
		if err != nil {
			return err
		}
		defer a.services.AuthService.Logout(sess)
		return fn(cmd, args, sess)
	}
}

var errEmailRequired = errors.New("email is required (--email or " + EnvEmail + ")")
