package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client"
	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/tokenstore"
	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/internal/config"
	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/internal/logger"
)

// app carries the state shared by every subcommand once the root has run.
type app struct {
	out    io.Writer
	errOut io.Writer

	logLevel string

	cfg    *config.Config
	store  *tokenstore.File
	client *client.Client
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Debug().Stack().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:           "fenixctl",
		Short:         "CLI client for the Fenix store REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(a.loginCmd(), a.logoutCmd(), a.configCmd())
	for _, spec := range resourceSpecs() {
		root.AddCommand(a.resourceCmd(spec))
	}
	return root
}

// setup resolves configuration once and builds the single client of the process.
func (a *app) setup() error {
	l := logger.NewWithWriter("fenixctl", a.errOut)
	zerolog.SetGlobalLevel(logger.Level(a.logLevel, false))
	log.Logger = l

	cfg, err := config.New()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(logger.Level(a.logLevel, cfg.Debug))

	store, err := tokenstore.OpenFile(cfg.TokenFile)
	if err != nil {
		return err
	}
	c, err := client.New(cfg.ClientConfig(),
		client.WithTokenStore(store),
		client.WithNavigator(a.navigator()),
		client.WithLogger(l),
		client.WithDebugLogging(cfg.Debug),
	)
	if err != nil {
		return err
	}
	a.cfg, a.store, a.client = cfg, store, c
	return nil
}

// navigator stands in for the login view: a terminal cannot be redirected,
// so the user is told how to sign in again.
func (a *app) navigator() client.Navigator {
	return client.NavigatorFunc(func(path string) {
		fmt.Fprintf(a.errOut, "session expired (%s): run `fenixctl login --token <token>` to sign in again\n", path)
	})
}
