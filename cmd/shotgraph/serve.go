package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hammamikhairi/shotgraph/internal/config"
	"github.com/hammamikhairi/shotgraph/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve presets and charts over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runWithApp(runServe),
}

func init() {
	serveCmd.Flags().String("addr", ":3000", "address to listen on")
	_ = viper.BindPFlag(config.KeyAddr, serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string, a *app) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("serving on %s\n", a.cfg.Addr)
	return server.New(a.engine, a.log).Run(ctx, a.cfg.Addr)
}
