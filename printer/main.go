package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"

	"github.com/patricioibar/olist-dashboard/printer/common"

	mw "github.com/patricioibar/olist-dashboard/middleware"
)

var log = logging.MustGetLogger("log")

// InitLogger Receives the log level to be set in go-logging as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stderr, "", 0)
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

	consumer, err := mw.NewConsumer(config.ConsumerName, config.ChartsExchange, config.MiddlewareAddress)
	if err != nil {
		log.Fatalf("Failed to create charts consumer: %v", err)
	}

	printer := common.NewPrinter(os.Stdout)
	go func() {
		if err := consumer.StartConsuming(printer.Callback()); err != nil {
			log.Fatalf("Failed to start consuming charts: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case runID := <-printer.Done():
		log.Infof("Run %s printed, shutting down printer...", runID)
	case sig := <-sigChan:
		log.Infof("Received signal %s, shutting down printer...", sig)
	}

	if err := consumer.Close(); err != nil {
		log.Errorf("Failed to close charts consumer: %v", err)
	}
}
