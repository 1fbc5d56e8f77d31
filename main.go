package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/appspec/harness/config"
	controller "github.com/appspec/harness/controllers"
	"github.com/appspec/harness/database"
	"github.com/appspec/harness/harnesscfg"
	"github.com/appspec/harness/logger"
	"github.com/appspec/harness/models"
	"github.com/appspec/harness/mq"
	"github.com/appspec/harness/scenario"
	"github.com/appspec/harness/serverctl"
)

var version = "dev"

// Resolve the scenario set and start the API Request Handler
func main() {
	absoluteConfigPath := flag.String("c", "", "absolute path to configuration file")
	flag.Parse()
	setupConfig(*absoluteConfigPath)
	harnesscfg.SetVersion(version)
	fmt.Println(models.RetrieveLogo()) // print the logo
	initialize()
	defer database.CloseDB()
	startControllers()
}

func setupConfig(absoluteConfigPath string) {
	cfg, err := config.ReadConfig(absoluteConfigPath)
	if err != nil {
		// the file is optional unless the operator pointed at one explicitly
		if len(absoluteConfigPath) > 0 {
			logger.FatalLog(fmt.Sprintf("failed parsing config at: %s", absoluteConfigPath))
		}
		return
	}
	config.Config = cfg
}

func initialize() {
	// the network transport selection comes first: configuration loading is
	// all-or-nothing and a bad APP_SPEC_NETWORK_TYPE aborts before any
	// scenario config exists
	if err := scenario.Initialize(); err != nil {
		logger.FatalLog("error loading scenario configs:", err.Error())
	}
	names, _ := scenario.Names()
	logger.Log(0, "loaded scenarios:", fmt.Sprintf("%v", names))

	// all scenarios share one rule set, any of them works as the source
	if cfg, err := scenario.Get(scenario.ScenarioOne); err == nil {
		if err := logger.ApplyRules(cfg.Logger); err != nil {
			logger.FatalLog("error installing log rules:", err.Error())
		}
	}

	if harnesscfg.GetMasterKey() == "" {
		logger.Log(0, "warning: MASTER_KEY not set, the harness api is open")
	}

	if err := database.InitializeDatabase(); err != nil {
		logger.FatalLog("Error connecting to database: ", err.Error())
	}
	logger.Log(0, "database successfully connected")
}

func startControllers() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if harnesscfg.IsMessageQueueBackend() {
		mq.SetupMQTT()
		defer mq.CloseClient()
	}

	go serverctl.StartRetentionTimer(ctx)

	var waitGroup sync.WaitGroup
	waitGroup.Add(1)
	go controller.HandleRESTRequests(ctx, &waitGroup)
	waitGroup.Wait()
}
