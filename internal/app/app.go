// Package app wires the configuration, catalog store, stage services
// and HTTP server together.
package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"orderflow/internal/catalog"
	"orderflow/internal/config"
	"orderflow/internal/metrics"
	"orderflow/internal/service/delivery"
	"orderflow/internal/service/order"
	"orderflow/internal/service/payment"
	"orderflow/internal/service/search"
	"orderflow/internal/service/shared"
	httptransport "orderflow/internal/transport/http"
)

// App is the assembled server.
type App struct {
	Server *httptransport.Server

	closers []func() error
}

// New assembles an App from cfg.
func New(cfg config.Config) (*App, error) {
	a := &App{}

	store, err := a.buildStore(cfg)
	if err != nil {
		return nil, err
	}

	lat := shared.DefaultLatency()
	lat.Scale = cfg.LatencyScale

	m := metrics.New(prometheus.DefaultRegisterer)

	h := httptransport.NewHandler(
		search.New(store, lat),
		order.New(store, lat),
		payment.New(cfg.DeclineRate, lat),
		delivery.New(lat),
		m,
		cfg.RequestTimeout,
	)
	a.Server = httptransport.NewServer(cfg.HTTPPort, h)
	return a, nil
}

func (a *App) buildStore(cfg config.Config) (catalog.Store, error) {
	switch cfg.StorageType {
	case config.StorageTypeMemory, "":
		return catalog.NewMemory(catalog.Seed()...), nil

	case config.StorageTypeRedis:
		store := catalog.NewRedis(catalog.RedisConfig{
			Addrs:     cfg.RedisAddrs,
			Namespace: cfg.Namespace,
		})
		if err := store.SeedIfEmpty(context.Background(), catalog.Seed()); err != nil {
			_ = store.Close()
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}
}

// Stop shuts the server down and releases held resources.
func (a *App) Stop() error {
	err := a.Server.Stop()
	for _, closeFn := range a.closers {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
