// Pencil-serve renders a scene headlessly and serves it over HTTP.
//
//	GET /frame.png   last rendered frame
//	GET /ws          websocket accepting pointer events as JSON
//	GET /health      liveness check
//
// A click on the scene drops a random triangle; clicking a triangle removes
// it. Settings come from PENCIL_* environment variables (see internal/config).
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/phanxgames/pencil"
	"github.com/phanxgames/pencil/internal/config"
	"github.com/phanxgames/pencil/remote"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	pencil.SetLogger(logger)

	srv := remote.NewServer(remote.Config{
		Width:          cfg.Width,
		Height:         cfg.Height,
		FPS:            cfg.FPS,
		OriginPatterns: cfg.Origins(),
	})
	scene, err := pencil.NewScene(srv.SceneConfig(),
		pencil.WithFill(cfg.Fill),
		pencil.WithCursor(cfg.Cursor),
	)
	if err != nil {
		slog.Error("create scene", "error", err)
		os.Exit(1)
	}
	scene.SetDebugMode(cfg.Debug)

	scene.On(pencil.EventClick, func(e *pencil.Event) {
		if e.Target != pencil.Node(scene) {
			return
		}
		tri, err := pencil.NewPolygon([]pencil.Position{
			e.Position,
			e.Position.Add(scene.RandomPosition().Subtract(scene.Center()).Translate(0, 30)),
			e.Position.Translate(40, 0),
		}, pencil.WithFill("#ffb000"), pencil.WithStroke("white", 2), pencil.WithOpacity(0.8))
		if err != nil {
			slog.Error("create triangle", "error", err)
			return
		}
		tri.On(pencil.EventClick, func(e *pencil.Event) {
			tri.RemoveFromParent()
			e.Stop()
		})
		scene.Add(tri)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := scene.StartLoop(); err != nil {
		slog.Error("first frame", "error", err)
		os.Exit(1)
	}
	loopErr := make(chan error, 1)
	go func() { loopErr <- srv.Run(ctx) }()

	r := mux.NewRouter()
	srv.Routes(r)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	httpSrv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigCh:
			slog.Info("shutting down server")
		case err := <-loopErr:
			slog.Error("frame loop stopped", "error", err)
		}
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpSrv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", cfg.Addr, "width", cfg.Width, "height", cfg.Height)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
