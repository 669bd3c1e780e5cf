package main

import (
	"github.com/spf13/cobra"

	"github.com/polkiloo/ordertrack/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ordertrack",
		Short: "Single-user order tracker with reports",
		Long: `ordertrack keeps clients and their orders in SQLite or PostgreSQL and
derives four reports from them: top clients, top products, orders over time
and the client co-occurrence graph.

Configuration comes from the environment (or a .env file) and flags.
Boolean flags take their value with "=", as in --reset=false.
  RUN_ADDRESS       -a                  HTTP listen address (:8080)
  STORAGE_DRIVER    --driver            sqlite or postgres (inferred from DSN)
  DATABASE_URI      -d                  SQLite file or PostgreSQL DSN (shop.db)
  RESET_ON_START    --reset             recreate the store on start (true)
  CLIENTS_CSV       --clients-csv       clients file (clients.csv)
  ORDERS_CSV        --orders-csv        orders file (orders.csv)
  API_TOKEN_HASH    --api-token-hash    bcrypt hash of the API token
  LOG_LEVEL         --log-level         debug, info, warn, error (info)
  SHUTDOWN_TIMEOUT  --shutdown-timeout  graceful shutdown timeout (10s)`,
		SilenceUsage: true,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newServeCmd(), newReportCmd(), newHashTokenCmd())
	return root
}
