package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-ownlist/config"
	"go-ownlist/util/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	configs := config.New()

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configs.DemoConfig.Bind(fs)
	_ = fs.Parse(os.Args[1:])

	if err := configs.DemoConfig.Validate(); err != nil {
		fatal(err)
	}
	if configs.DemoConfig.Debug {
		logger.L.SetLevel(logrus.DebugLevel)
	}

	d := newDemo(configs.DemoConfig, os.Stdout, logger.With("demo"))

	done := make(chan error, 1)
	go func() {
		done <- d.run(configs.DemoConfig.Scenario)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-done:
		if err != nil {
			fatalf("scenario '%s' failed: %v\n", configs.DemoConfig.Scenario, err)
		}
	case q := <-quit:
		fmt.Printf("\n%s signal received, stopping\n", q.String())
	}
}

func fatal(val interface{}) {
	fmt.Println(val)
	os.Exit(1)
}

func fatalf(format string, values ...interface{}) {
	fmt.Printf(format, values...)
	os.Exit(1)
}
