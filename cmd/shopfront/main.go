package main

import (
	"context"
	"log"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/api"
	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/app"
	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/cli"
	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/shop"
	"github.com/andreasstove999/ecommerce-system/shopfront-go/internal/ui"
)

const version = "0.1.0"

func main() {
	cfg := config.Load()

	var (
		shopURL string
		timeout time.Duration
	)

	root := &cobra.Command{
		Use:     "shopfront",
		Short:   "Interactive terminal client for the shopping-cart backend",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), shopURL, timeout)
		},
	}
	root.Flags().StringVar(&shopURL, "shop-url", cfg.ShopURL, "base URL of the shop backend")
	root.Flags().DurationVar(&timeout, "timeout", cfg.RequestTimeout, "per-request timeout")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, shopURL string, timeout time.Duration) error {
	logger := log.New(os.Stderr, "[shopfront] ", log.LstdFlags)

	// Cookie jar so any session cookie set at login rides along on later
	// requests, the way a browser would carry it.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Jar:     jar,
	}

	client := shop.NewClient(api.NewClient(shopURL, httpClient))
	page := ui.NewPage()
	alerts := ui.WriterAlerter{W: os.Stdout}

	storefront := app.New(client, page, alerts, logger)
	repl := cli.New(storefront, alerts, os.Stdin, os.Stdout)

	return repl.Run(ctx)
}
