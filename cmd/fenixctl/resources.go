package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client"
)

// payload is what a write subcommand collected from its flags.
type payload struct {
	json   json.RawMessage
	fields client.Fields
}

// resourceOps adapts one resource helper to the generic subcommands.
type resourceOps struct {
	list          func(context.Context, url.Values) (*client.Response, error)
	get           func(context.Context, any) (*client.Response, error)
	create        func(context.Context, payload) (*client.Response, error)
	update        func(context.Context, any, payload) (*client.Response, error)
	partialUpdate func(context.Context, any, payload) (*client.Response, error)
	del           func(context.Context, any) (*client.Response, error)
	export        func(context.Context) (*client.Response, error)
}

type resourceSpec struct {
	name      string
	short     string
	multipart bool
	ops       func(*client.Client) resourceOps
}

func resourceSpecs() []resourceSpec {
	return []resourceSpec{
		{name: "categories", short: "Manage product categories", ops: func(c *client.Client) resourceOps {
			return jsonOps(c.Categories, nil)
		}},
		{name: "products", short: "Manage products", multipart: true, ops: func(c *client.Client) resourceOps {
			return formOps(c.Products)
		}},
		{name: "customers", short: "Manage customers", ops: func(c *client.Client) resourceOps {
			return jsonOps(c.Customers.Resource, c.Customers.ExportCSV)
		}},
		{name: "usuarias", short: "Manage users", multipart: true, ops: func(c *client.Client) resourceOps {
			return formOps(c.Users.FormResource)
		}},
		{name: "orders", short: "Manage orders", ops: func(c *client.Client) resourceOps {
			return jsonOps(c.Orders.Resource, c.Orders.ExportCSV)
		}},
		{name: "order-items", short: "Manage order items", ops: func(c *client.Client) resourceOps {
			return jsonOps(c.OrderItems.Resource, c.OrderItems.ExportCSV)
		}},
	}
}

func jsonOps(r *client.Resource, export func(context.Context) (*client.Response, error)) resourceOps {
	return resourceOps{
		list: r.List,
		get:  r.GetByID,
		create: func(ctx context.Context, p payload) (*client.Response, error) {
			return r.Create(ctx, p.json)
		},
		update: func(ctx context.Context, id any, p payload) (*client.Response, error) {
			return r.Update(ctx, id, p.json)
		},
		partialUpdate: func(ctx context.Context, id any, p payload) (*client.Response, error) {
			return r.PartialUpdate(ctx, id, p.json)
		},
		del:    r.Delete,
		export: export,
	}
}

func formOps(r *client.FormResource) resourceOps {
	return resourceOps{
		list: r.List,
		get:  r.GetByID,
		create: func(ctx context.Context, p payload) (*client.Response, error) {
			return r.Create(ctx, p.fields)
		},
		update: func(ctx context.Context, id any, p payload) (*client.Response, error) {
			return r.Update(ctx, id, p.fields)
		},
		partialUpdate: func(ctx context.Context, id any, p payload) (*client.Response, error) {
			return r.PartialUpdate(ctx, id, p.fields)
		},
		del:    r.Delete,
		export: r.ExportCSV,
	}
}

func (a *app) resourceCmd(spec resourceSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   spec.name,
		Short: spec.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return cmd.Help()
		},
	}
	ops := func() resourceOps { return spec.ops(a.client) }

	var params []string
	list := &cobra.Command{
		Use:   "list",
		Short: "List " + spec.name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := parseQuery(params)
			if err != nil {
				return err
			}
			return a.print(ops().list(cmd.Context(), q))
		},
	}
	list.Flags().StringArrayVarP(&params, "param", "p", nil, "Query parameter key=value (repeatable)")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "get ID",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(ops().get(cmd.Context(), args[0]))
		},
	})

	cmd.AddCommand(a.writeCmd(spec, "create", "Create an item", cobra.NoArgs,
		func(ctx context.Context, _ []string, p payload) (*client.Response, error) {
			return ops().create(ctx, p)
		}))
	cmd.AddCommand(a.writeCmd(spec, "update ID", "Replace an item", cobra.ExactArgs(1),
		func(ctx context.Context, args []string, p payload) (*client.Response, error) {
			return ops().update(ctx, args[0], p)
		}))
	cmd.AddCommand(a.writeCmd(spec, "patch ID", "Partially update an item", cobra.ExactArgs(1),
		func(ctx context.Context, args []string, p payload) (*client.Response, error) {
			return ops().partialUpdate(ctx, args[0], p)
		}))

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ops().del(cmd.Context(), args[0]); err != nil {
				return a.apiError(err)
			}
			fmt.Fprintf(a.out, "deleted %s %s\n", spec.name, args[0])
			return nil
		},
	})

	if spec.name != "categories" {
		cmd.AddCommand(a.exportCmd(spec, ops))
	}
	if spec.name == "usuarias" {
		cmd.AddCommand(a.reactivateCmd(), a.statsCmd())
	}
	return cmd
}

func (a *app) writeCmd(spec resourceSpec, use, short string, args cobra.PositionalArgs,
	run func(context.Context, []string, payload) (*client.Response, error)) *cobra.Command {
	var (
		fields  []string
		files   []string
		rawJSON string
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			var p payload
			if spec.multipart {
				f, closeFiles, err := parseFields(fields, files)
				if err != nil {
					return err
				}
				defer closeFiles()
				p.fields = f
			} else {
				raw, err := readJSON(rawJSON)
				if err != nil {
					return err
				}
				p.json = raw
			}
			return a.print(run(cmd.Context(), args, p))
		},
	}
	if spec.multipart {
		cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "Form field key=value (repeatable)")
		cmd.Flags().StringArrayVar(&files, "file", nil, "File field key=path (repeatable)")
	} else {
		cmd.Flags().StringVarP(&rawJSON, "json", "j", "", "JSON payload, or @path to read it from a file (required)")
		_ = cmd.MarkFlagRequired("json")
	}
	return cmd
}

func (a *app) exportCmd(spec resourceSpec, ops func() resourceOps) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download " + spec.name + " as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			export := ops().export
			if export == nil {
				return errors.New(spec.name + " cannot be exported")
			}
			resp, err := export(cmd.Context())
			if err != nil {
				return a.apiError(err)
			}
			if out == "" {
				out = spec.name + ".csv"
			}
			if err := client.DownloadFile(resp.Data, out); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "saved %d bytes to %s\n", len(resp.Data), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination file (default <resource>.csv)")
	return cmd
}

func (a *app) reactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reactivate ID",
		Short: "Reactivate a deactivated user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(a.client.Users.Reactivate(cmd.Context(), args[0]))
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate user statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(a.client.Users.Statistics(cmd.Context()))
		},
	}
}
