package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bell-lookup/internal/catalog"
	"bell-lookup/internal/httpapi"
	"bell-lookup/internal/infra/logx"
	"bell-lookup/internal/reload"
	"bell-lookup/internal/source"
	"bell-lookup/internal/supabase"
)

type serveOptions struct {
	addr   string
	reload string
}

func addServe(topLevel *cobra.Command) {
	so := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the channel lookup over HTTP, reloading on a schedule.",
		Example: `
belltv serve
belltv serve --addr :9000 --reload "@every 1h"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, src, err := openSource()
			if err != nil {
				return err
			}
			defer src.Close()
			cmd.SilenceUsage = true
			if so.addr != "" {
				cfg.Addr = so.addr
			}
			if so.reload != "" {
				cfg.Reload = so.reload
			}

			cat, err := catalog.New()
			if err != nil {
				return err
			}
			var metrics *supabase.Metrics
			if rest, ok := src.(*source.REST); ok {
				metrics = rest.Metrics()
			}

			if !ro.debug {
				gin.SetMode(gin.ReleaseMode)
			}
			gin.DefaultWriter = logx.StdlogWriter(logx.LevelInfo, cmd.ErrOrStderr())
			gin.DefaultErrorWriter = logx.StdlogWriter(logx.LevelError, cmd.ErrOrStderr())
			router := httpapi.NewRouter(httpapi.NewHandler(cat, metrics))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return reload.New(src, cat, cfg.Reload).Run(ctx)
			})
			g.Go(func() error {
				return httpapi.Serve(ctx, cfg.Addr, router)
			})
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&so.addr, "addr", "", "Listen address (default BELLTV_ADDR, PORT or :8080).")
	cmd.Flags().StringVar(&so.reload, "reload", "", `Cron schedule for reloads (default BELLTV_RELOAD or "@every 15m").`)

	topLevel.AddCommand(cmd)
}
