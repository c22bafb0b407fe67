package main

import (
	"fmt"
	"os"

	"github.com/AkifumiSato/at-api/cmd/app"
	"github.com/AkifumiSato/at-api/internal/cli"
	"github.com/AkifumiSato/at-api/internal/config"
	"github.com/AkifumiSato/at-api/internal/repository"
)

func main() {
	open := func() (*repository.Repository, func(), error) {
		db, repo, _, err := app.App(config.LoadConfig())
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { app.Close(db) }, nil
	}

	if err := cli.NewRootCommand(open).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
