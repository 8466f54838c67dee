package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	intconfig "carrental-backend/internal/config"
	router "carrental-backend/internal/http"
	"carrental-backend/internal/jobs"
	"carrental-backend/internal/utils"
)

func main() {
	utils.InitLogger()

	env := intconfig.LoadEnv()

	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	sweep, err := jobs.StartOverdueSweep(env)
	if err != nil {
		logrus.Fatalf("failed to schedule overdue sweep: %v", err)
	}
	defer sweep.Stop()

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.WithField("addr", env.AppAddr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("shutdown failed: %v", err)
	}

	logrus.Info("server stopped")
}
