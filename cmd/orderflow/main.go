package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"orderflow/internal/app"
	"orderflow/internal/config"
	"orderflow/internal/logger"
)

type cli struct {
	cfg config.Config
}

func setupServerFlags(cmd *cobra.Command) error {
	cmd.Flags().String("config-file", "", "Path to config file.")
	cmd.Flags().Int("http-port", 8080, "http port for the stage endpoints")
	cmd.Flags().String("storage-impl", "memory", "catalog storage implementation (memory|redis)")
	cmd.Flags().String("redis-addr", "localhost:6379", "comma separated list of redis host:port")
	cmd.Flags().String("namespace", "orderflow", "namespace used in redis keys")
	cmd.Flags().Duration("request-timeout", 10*time.Second, "per-request timeout for stage calls")
	cmd.Flags().Float64("latency-scale", 1.0, "scale for artificial stage delays, 0 disables")
	cmd.Flags().Float64("decline-rate", 0.15, "probability an unforced payment declines")
	cmd.Flags().Bool("debug", false, "enable debug logging")
	return viper.BindPFlags(cmd.Flags())
}

func (c *cli) setupConfig(cmd *cobra.Command, args []string) error {
	configFile, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return err
	}
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	}

	c.cfg.HTTPPort = viper.GetInt("http-port")
	c.cfg.StorageType = config.StorageType(viper.GetString("storage-impl"))
	c.cfg.RedisAddrs = strings.Split(viper.GetString("redis-addr"), ",")
	c.cfg.Namespace = viper.GetString("namespace")
	c.cfg.RequestTimeout = viper.GetDuration("request-timeout")
	c.cfg.LatencyScale = viper.GetFloat64("latency-scale")
	c.cfg.DeclineRate = viper.GetFloat64("decline-rate")
	c.cfg.Debug = viper.GetBool("debug")
	return nil
}

func (c *cli) runServer(cmd *cobra.Command, args []string) error {
	if err := logger.Init(c.cfg.Debug); err != nil {
		return err
	}
	defer logger.Sync()

	a, err := app.New(c.cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.Server.Start)
	g.Go(func() error {
		<-ctx.Done()
		return a.Stop()
	})
	return g.Wait()
}

func main() {
	c := &cli{}

	serverCmd := &cobra.Command{
		Use:     "server",
		Short:   "Run the order fulfillment API server",
		PreRunE: c.setupConfig,
		RunE:    c.runServer,
	}
	if err := setupServerFlags(serverCmd); err != nil {
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "orderflow",
		Short:         "Four-stage order fulfillment workflow",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(serverCmd, searchCmd(), orderCmd(), payCmd(), deliverCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
