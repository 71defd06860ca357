package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/go-points/components/database"
	"github.com/go-points/components/entity"
	"github.com/go-points/pkg/logging"
	"github.com/go-points/pkg/setting"
	"github.com/go-points/routers"
	"github.com/go-points/routers/api"
	"github.com/go-points/utils/header"
)

func main() {
	config := flag.String("config", "conf/app.ini", "path of the configuration file")
	flag.Parse()

	log := logging.NewLogger("main")

	if err := setting.Setup(*config); err != nil {
		log.WithError(err).Fatal("cannot load configuration")
	}
	if err := logging.Setup(setting.AppSetting.LogLevel); err != nil {
		log.WithError(err).Fatal("cannot set up logging")
	}

	alerts := setting.Builder()
	header.SetDefault(alerts)

	store, err := database.Open(setting.DatabaseSetting, entity.Models()...)
	if err != nil {
		log.WithError(err).Fatal("cannot open database")
	}
	defer store.Close()

	gin.SetMode(setting.ServerSetting.RunMode)
	router := routers.InitRouter(routers.Options{
		Handler:   api.NewHandler(store, alerts, setting.AppSetting.PageSize),
		Alerts:    alerts,
		JwtSecret: setting.AppSetting.JwtSecret,
	})

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", setting.ServerSetting.HttpPort),
		Handler:        router,
		ReadTimeout:    setting.ServerSetting.ReadTimeout,
		WriteTimeout:   setting.ServerSetting.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	log.Info("server exited")
}
