package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/op/go-logging"

	"github.com/patricioibar/olist-dashboard/dashboard/common"
	"github.com/patricioibar/olist-dashboard/loader"
	mw "github.com/patricioibar/olist-dashboard/middleware"
)

const shutdownTimeout = 5 * time.Second

var log = logging.MustGetLogger("log")

// InitLogger Receives the log level to be set in go-logging as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	config, err := common.InitConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	if err := InitLogger(config.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	log.Debugf("Config: %+v", config)

	snapshot, err := loader.NewCache(config.DatasetPath).Get()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	engine, err := common.NewEngine(snapshot, config.Options())
	if err != nil {
		log.Fatalf("Failed to start dashboard engine: %v", err)
	}
	log.Infof("Dataset loaded, purchases span %s", engine.Bounds())

	var publisher *common.Publisher
	if config.PublishingEnabled() {
		producer, err := mw.NewProducer(config.ChartsExchange, config.MiddlewareAddress)
		if err != nil {
			log.Fatalf("Failed to create charts producer: %v", err)
		}
		publisher = common.NewPublisher(producer)
		defer publisher.Close()

		dashboard, err := engine.Compute(engine.Bounds())
		if err != nil {
			log.Fatalf("Failed to compute default dashboard: %v", err)
		}
		if err := publisher.Publish(dashboard); err != nil {
			log.Errorf("Failed to publish default dashboard: %v", err)
		}
	}

	server := &http.Server{
		Addr:    config.HTTPAddress,
		Handler: common.NewServer(engine, publisher).Routes(),
	}

	go func() {
		log.Infof("Serving dashboard on %s", config.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Infof("Received signal %s, shutting down dashboard...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Failed to shut down HTTP server: %v", err)
	}
}
