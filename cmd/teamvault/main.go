package main

import (
	"context"
	"os"

	"github.com/MKhiriev/team-vault/internal/cli"
	"github.com/MKhiriev/team-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	app := cli.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	if err := app.Execute(context.Background(), os.Args[1:]); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
