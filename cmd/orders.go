package main

import (
	"context"
	"estimator/internal/config"
	"estimator/pkg/docstore"
	"estimator/pkg/docstore/boltstore"
	"estimator/pkg/domain"
	"estimator/pkg/export"
	"estimator/pkg/logger"
	"estimator/pkg/orders"
	"estimator/pkg/render"
	"estimator/pkg/storage/postgres"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getOrderStore returns the document store of the orders desk. The postgres
// backend reuses pgsql, which must be set for it.
func getOrderStore(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL) (docstore.Store, func()) {
	if cfg.Orders.Backend == config.OrdersBackendPostgres {
		if pgsql == nil {
			logger.Fatal(ctx, "postgres orders backend needs a database connection")
		}

		return pgsql, func() {}
	}

	store, err := boltstore.Open(cfg.Orders.LocalDBPath)
	if err != nil {
		logger.Fatal(ctx, "could not open local orders database", zap.Error(err))
	}

	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn(ctx, "could not close local orders database", zap.Error(err))
		}
	}
}

type deskRun func(ctx context.Context, cmd *cobra.Command, args []string, desk *orders.Desk, out *render.Renderer) error

// withDesk opens the configured orders backend and runs fn against it.
func withDesk(cfg *config.Config, fn deskRun) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ctx := cmd.Context()

		out, err := newRenderer(cmd)
		if err != nil {
			return err
		}

		var pgsql *postgres.PgSQL
		if cfg.Orders.Backend == config.OrdersBackendPostgres {
			var closePg func()
			pgsql, closePg = getPostgres(ctx, cfg)
			defer closePg()
		}
		docs, closeDocs := getOrderStore(ctx, cfg, pgsql)
		defer closeDocs()

		return fn(ctx, cmd, args, orders.NewDesk(docs), out)
	}
}

func ordersCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manages sales orders and the work orders made from them",
	}
	addOutputFlag(cmd)

	add := &cobra.Command{
		Use:   "add",
		Short: "Adds a sales order",
		Args:  cobra.NoArgs,
		RunE: withDesk(cfg, func(ctx context.Context, cmd *cobra.Command, _ []string,
			desk *orders.Desk, out *render.Renderer) error {
			var input domain.OrderInput
			input.Customer, _ = cmd.Flags().GetString("customer")
			input.Product, _ = cmd.Flags().GetString("product")
			input.Qty, _ = cmd.Flags().GetInt("qty")
			input.Due, _ = cmd.Flags().GetString("due")

			order, err := desk.AddOrder(ctx, input)
			if err != nil {
				return err
			}

			return out.Order(order)
		}),
	}
	add.Flags().String("customer", "", "Customer name")
	add.Flags().String("product", "", "Product or part name")
	add.Flags().Int("qty", 1, "Quantity")
	add.Flags().String("due", "", "Due date, e.g. 2026-04-01")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Lists sales orders, newest first",
			Args:  cobra.NoArgs,
			RunE: withDesk(cfg, func(ctx context.Context, _ *cobra.Command, _ []string,
				desk *orders.Desk, out *render.Renderer) error {
				list, err := desk.ListOrders(ctx)
				if err != nil {
					return err
				}

				return out.Orders(list)
			}),
		},
		add,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Deletes a sales order",
			Args:  cobra.ExactArgs(1),
			RunE: withDesk(cfg, func(ctx context.Context, _ *cobra.Command, args []string,
				desk *orders.Desk, out *render.Renderer) error {
				if err := desk.DeleteOrder(ctx, args[0]); err != nil {
					return err
				}

				return out.Message("Order deleted.")
			}),
		},
		&cobra.Command{
			Use:   "convert <id>",
			Short: "Turns a sales order into an open work order",
			Args:  cobra.ExactArgs(1),
			RunE: withDesk(cfg, func(ctx context.Context, _ *cobra.Command, args []string,
				desk *orders.Desk, out *render.Renderer) error {
				work, err := desk.ConvertToWorkOrder(ctx, args[0])
				if err != nil {
					return err
				}

				return out.WorkOrder(work)
			}),
		},
		&cobra.Command{
			Use:   "work",
			Short: "Lists work orders, newest first",
			Args:  cobra.NoArgs,
			RunE: withDesk(cfg, func(ctx context.Context, _ *cobra.Command, _ []string,
				desk *orders.Desk, out *render.Renderer) error {
				list, err := desk.ListWorkOrders(ctx)
				if err != nil {
					return err
				}

				return out.WorkOrders(list)
			}),
		},
		&cobra.Command{
			Use:   "complete <id>",
			Short: "Marks a work order completed",
			Args:  cobra.ExactArgs(1),
			RunE: withDesk(cfg, func(ctx context.Context, _ *cobra.Command, args []string,
				desk *orders.Desk, out *render.Renderer) error {
				work, err := desk.CompleteWorkOrder(ctx, args[0])
				if err != nil {
					return err
				}

				return out.WorkOrder(work)
			}),
		},
		&cobra.Command{
			Use:   "delete-work <id>",
			Short: "Deletes a work order",
			Args:  cobra.ExactArgs(1),
			RunE: withDesk(cfg, func(ctx context.Context, _ *cobra.Command, args []string,
				desk *orders.Desk, out *render.Renderer) error {
				if err := desk.DeleteWorkOrder(ctx, args[0]); err != nil {
					return err
				}

				return out.Message("Work order deleted.")
			}),
		},
		&cobra.Command{
			Use:   "export <file.xlsx>",
			Short: "Writes sales and work orders to a spreadsheet",
			Args:  cobra.ExactArgs(1),
			RunE: withDesk(cfg, func(ctx context.Context, _ *cobra.Command, args []string,
				desk *orders.Desk, out *render.Renderer) error {
				if err := desk.Load(ctx); err != nil {
					return err
				}

				if err := writeFile(args[0], func(w io.Writer) error {
					return export.OrdersWorkbook(w, desk.Orders(), desk.WorkOrders())
				}); err != nil {
					return err
				}

				return out.Message(fmt.Sprintf("Exported %d orders and %d work orders to %s",
					len(desk.Orders()), len(desk.WorkOrders()), args[0]))
			}),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Deletes every sales and work order",
			Args:  cobra.NoArgs,
			RunE: withDesk(cfg, func(ctx context.Context, _ *cobra.Command, _ []string,
				desk *orders.Desk, out *render.Renderer) error {
				if err := desk.ClearAll(ctx); err != nil {
					return err
				}

				return out.Message("All orders cleared.")
			}),
		},
	)

	return cmd
}
