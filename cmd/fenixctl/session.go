package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/tokenstore"
)

func (a *app) loginCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the session token used to authenticate requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token = strings.TrimSpace(token)
			if token == "" {
				return errors.New("--token must not be empty")
			}
			if err := a.store.Set(tokenstore.Key, token); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "token saved to %s\n", a.store.Path())
			return nil
		},
	}
	cmd.Flags().StringVarP(&token, "token", "t", "", "Session token issued by the backend (required)")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.Delete(tokenstore.Key); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "logged out")
			return nil
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, authed := tokenstore.Token(a.store)
			fmt.Fprintf(a.out, "mode:          %s\n", a.cfg.Mode)
			fmt.Fprintf(a.out, "base url:      %s\n", a.client.BaseURL())
			fmt.Fprintf(a.out, "timeout:       %s\n", a.client.Config().Timeout)
			fmt.Fprintf(a.out, "token file:    %s\n", a.store.Path())
			fmt.Fprintf(a.out, "authenticated: %t\n", authed)
			return nil
		},
	}
}
