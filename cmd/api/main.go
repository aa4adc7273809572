//go:generate swag init --dir ../../ --generalInfo cmd/api/main.go --output ../../internal/docs --outputTypes go

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"address-catalog/internal/config"
	_ "address-catalog/internal/docs"
	"address-catalog/internal/handler"
	"address-catalog/internal/logging"
	"address-catalog/internal/repository"
	"address-catalog/internal/service"
	"address-catalog/internal/viacep"
	"address-catalog/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Address Catalog API
//	@version		1.0
//	@description	Saves labeled Brazilian addresses resolved from their postal code (CEP).
//	@BasePath		/api
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if err := logging.Setup(config.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("cannot parse log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Snapshot storage
	slot, closeSlot, err := repository.Open(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Str("backend", config.StorageBackend).Msg("cannot open storage")
	}
	defer closeSlot()

	store := service.NewAddressStore(slot, config.StorageKey)
	store.Load(ctx)

	lookup := viacep.NewClient(config.ViaCEPBaseURL, config.LookupTimeout,
		viacep.WithCache(config.LookupCacheSize, config.LookupCacheTTL))
	defer lookup.Close()

	// Initialize layers
	catalog := service.NewCatalog(lookup, store)

	pageHandler := handler.NewPageHandler(catalog)
	addressHandler := handler.NewAddressHandler(catalog)
	postalCodeHandler := handler.NewPostalCodeHandler(lookup)

	r := gin.New()
	r.Use(handler.RequestLogger(), gin.Recovery())
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"addresses": store.Len(),
		})
	})

	handler.RegisterRoutes(r, pageHandler, addressHandler, postalCodeHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: r,
	}

	go func() {
		log.Info().Str("address", config.ServerAddress).Msg("address catalog listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	if err := store.Save(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("final snapshot")
	}
}
