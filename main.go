package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/lucasforesti/pilotoapi/config"
	"github.com/lucasforesti/pilotoapi/content"
	"github.com/lucasforesti/pilotoapi/handlers"
	"github.com/lucasforesti/pilotoapi/imageurl"
	applog "github.com/lucasforesti/pilotoapi/logger"
	mw "github.com/lucasforesti/pilotoapi/middleware"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	client := content.New(cfg)
	var live *content.Client
	if cfg.PreviewEnabled() {
		live = content.Live(cfg)
	}
	resolver := imageurl.New(cfg.ProjectID, cfg.Dataset)

	h := handlers.New(client, live, resolver, cfg.PreviewKey())

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"*", "Authorization"},
	}))

	e.GET("/healthz", h.Health)

	api := e.Group("/api")
	api.GET("/home", h.Home)
	api.GET("/noticias", h.Noticias)
	api.GET("/noticias/:slug", h.NoticiaDetalhe)
	api.GET("/calendario", h.Calendario)
	api.GET("/calendario/proxima/stream", h.ProximaCorridaStream)
	api.GET("/galeria", h.Galeria)
	api.GET("/galeria/:slug", h.GaleriaAlbum)
	api.GET("/patrocinadores", h.Patrocinadores)
	api.GET("/sobre", h.Sobre)
	api.GET("/contato", h.Contato)

	if cfg.PreviewEnabled() {
		e.POST("/preview/signin", h.PreviewSignin)
		preview := e.Group("/preview/api", mw.Preview(cfg.PreviewKey()))
		preview.GET("/home", h.Home)
		preview.GET("/noticias", h.Noticias)
		preview.GET("/noticias/:slug", h.NoticiaDetalhe)
		preview.GET("/calendario", h.Calendario)
		preview.GET("/calendario/proxima/stream", h.ProximaCorridaStream)
		preview.GET("/galeria", h.Galeria)
		preview.GET("/galeria/:slug", h.GaleriaAlbum)
		preview.GET("/patrocinadores", h.Patrocinadores)
		preview.GET("/sobre", h.Sobre)
		preview.GET("/contato", h.Contato)
	}

	registerSPA(e, cfg.StaticDir)

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}

// registerSPA serves the built front-end from dir. Requests for real files
// are served as-is; every other path falls back to index.html so client-side
// routing works after a hard reload.
func registerSPA(e *echo.Echo, dir string) {
	fileServer := http.FileServer(http.Dir(dir))
	e.GET("/*", func(c echo.Context) error {
		path := c.Request().URL.Path

		// Static assets carry an extension (JS, CSS, images, ...).
		if strings.Contains(filepath.Base(path), ".") {
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}

		index, err := os.Open(filepath.Join(dir, "index.html"))
		if err != nil {
			return c.NoContent(http.StatusNotFound)
		}
		defer index.Close()

		return c.Stream(http.StatusOK, "text/html", index)
	})
}
