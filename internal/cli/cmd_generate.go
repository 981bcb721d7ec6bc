package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/team-vault/internal/crypto"
)

func (a *App) newGenerateCommand() *cobra.Command {
	var (
		length                                 int
		noLower, noUpper, noNumbers, noSymbols bool
		cp                                     bool
	)

	cmd := &cobra.Command{
		Use:         "generate",
		Aliases:     []string{"gen"},
		Short:       "Generate a random password",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []crypto.CharsetOption
			if noLower {
				opts = append(opts, crypto.WithoutLowercase())
			}
			if noUpper {
				opts = append(opts, crypto.WithoutUppercase())
			}
			if noNumbers {
				opts = append(opts, crypto.WithoutNumbers())
			}
			if noSymbols {
				opts = append(opts, crypto.WithoutSymbols())
			}

			pw, err := crypto.NewGenerator().GeneratePassword(length, opts...)
			if err != nil {
				return err
			}

			if cp {
				if err = a.copyText(pw); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				a.success("Copied a %d character password", length)
			} else {
				fmt.Fprintln(a.out, pw)
			}
			a.printStrength(pw)
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", 16, "password length")
	cmd.Flags().BoolVar(&noLower, "no-lower", false, "leave out lowercase letters")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "leave out uppercase letters")
	cmd.Flags().BoolVar(&noNumbers, "no-numbers", false, "leave out digits")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "leave out symbols")
	cmd.Flags().BoolVar(&cp, "copy", false, "copy to the clipboard instead of printing")
	return cmd
}

func (a *App) newStrengthCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "strength [PASSWORD]",
		Short:       "Estimate how strong a password is",
		Long:        `Estimate how strong a password is. The password is prompted for when not given.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var pw string
			if len(args) == 1 {
				pw = args[0]
			} else {
				var err error
				if pw, err = a.readPassword("Password: "); err != nil {
					return err
				}
			}
			a.printStrength(pw)
			return nil
		},
	}
}

func (a *App) printStrength(pw string) {
	s := crypto.ScoreStrength(pw)
	fmt.Fprint(a.errOut, "Strength: ")
	strengthColor(s.Level).Fprintf(a.errOut, "%s (%d/7)\n", s.Label, s.Score)
}
