package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"glossary/internal/api"
	"glossary/internal/counter"
	"glossary/internal/db"
	"glossary/internal/glossary"
	"glossary/internal/storage"
)

func newHTTPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "http",
		Short: "Serve the glossary and hit counter over HTTP/JSON",
		RunE:  runHTTP,
	}
}

func runHTTP(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	d, err := loadDeps()
	if err != nil {
		return err
	}
	defer d.log.Sync()

	gdb, err := d.openDB()
	if err != nil {
		return err
	}
	defer db.Close(gdb)

	srv := &api.Server{
		Terms:   glossary.NewRepository(gdb),
		Counter: counter.New(gdb),
		Log:     d.log,
	}
	if d.cfg.MinIO.Enabled {
		store, err := storage.NewMinioStore(ctx, d.cfg.MinIO)
		if err != nil {
			return fmt.Errorf("connecting to minio: %w", err)
		}
		srv.Store = store
		d.log.Info("term export enabled", "bucket", d.cfg.MinIO.Bucket)
	}

	if d.cfg.LogMode == "production" || d.cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	httpSrv := &http.Server{Addr: d.cfg.HTTPAddr, Handler: api.NewRouter(srv)}
	return serveHTTP(ctx, httpSrv, d.cfg.ShutdownTimeout, d.log)
}
