package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gamebridge-labs/gamebridge/auth"
	"github.com/gamebridge-labs/gamebridge/bridge"
	"github.com/gamebridge-labs/gamebridge/cache"
	"github.com/gamebridge-labs/gamebridge/config"
	bridgedb "github.com/gamebridge-labs/gamebridge/db"
	"github.com/gamebridge-labs/gamebridge/economy"
	"github.com/gamebridge-labs/gamebridge/logging"
	"github.com/gamebridge-labs/gamebridge/metrics"
	"github.com/gamebridge-labs/gamebridge/restapi/handlers"
	"github.com/gamebridge-labs/gamebridge/service"
)

func initFlags() {
	flag.String(config.FlagConfigPath, "", "config file path")
	flag.String(config.FlagConfigType, "", "config type, local or aws")
	flag.String(config.FlagConfigAwsRegion, "", "aws region")
	flag.String(config.FlagConfigAwsSecretKey, "", "aws secret key")
	flag.String(config.FlagConfigDbPass, "", "gamebridge db password")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	err := viper.BindPFlags(pflag.CommandLine)
	if err != nil {
		panic(err)
	}
}

func printUsage() {
	fmt.Print("usage: ./gamebridge --config-type local --config-path configFile\n")
	fmt.Print("usage: ./gamebridge --config-type aws --aws-region awsRegion --aws-secret-key awsSecretKey\n")
}

func main() {
	var (
		cfg                        *config.Config
		configType, configFilePath string
	)
	initFlags()
	configType = viper.GetString(config.FlagConfigType)
	if configType == "" {
		configType = os.Getenv(config.EnvVarConfigType)
	}
	if configType != config.AWSConfig && configType != config.LocalConfig {
		printUsage()
		return
	}
	if configType == config.AWSConfig {
		awsSecretKey := viper.GetString(config.FlagConfigAwsSecretKey)
		awsRegion := viper.GetString(config.FlagConfigAwsRegion)
		if awsSecretKey == "" || awsRegion == "" {
			printUsage()
			return
		}
		configContent, err := config.GetSecret(awsSecretKey, awsRegion)
		if err != nil {
			fmt.Printf("get aws config error, err=%s", err.Error())
			return
		}
		cfg = config.ParseConfigFromJson(configContent)
	} else {
		configFilePath = viper.GetString(config.FlagConfigPath)
		if configFilePath == "" {
			configFilePath = os.Getenv(config.EnvVarConfigFilePath)
			if configFilePath == "" {
				printUsage()
				return
			}
		}
		cfg = config.ParseConfigFromFile(configFilePath)
	}
	if cfg == nil {
		panic("failed to get configuration")
	}
	logging.InitLogger(&cfg.LogConfig)

	if pass := viper.GetString(config.FlagConfigDbPass); pass != "" {
		cfg.DBConfig.Password = pass
	} else if pass = os.Getenv(config.EnvVarDBUserPass); pass != "" {
		cfg.DBConfig.Password = pass
	}

	gdb := config.InitDBWithConfig(&cfg.DBConfig, true)
	dao := bridgedb.NewBridgeSvcDB(gdb)

	authz, err := auth.NewSingleOwner(cfg.BridgeConfig.Owner())
	if err != nil {
		panic(err)
	}
	ledger := economy.NewLedger(cfg.BridgeConfig.Ledger())
	controller, err := bridge.New(dao, ledger, authz, cfg.BridgeConfig.Bridge())
	if err != nil {
		panic(err)
	}
	ledger.RegisterReceiver(cfg.BridgeConfig.Bridge(), controller)

	localCache, err := cache.NewLocalCache(cfg.CacheConfig.GetCacheSize())
	if err != nil {
		panic(err)
	}
	service.QuerySvc = service.NewQueryService(controller, localCache)

	if cfg.MetricsConfig.Enable {
		m := metrics.NewMetrics(cfg.MetricsConfig.Address)
		m.Start()
	}

	listenAddr := cfg.ServerConfig.GetListenAddress()
	logging.Logger.Infof("gamebridge serving on %s, ledger=%s", listenAddr, cfg.BridgeConfig.LedgerAddress)
	if err := http.ListenAndServe(listenAddr, handlers.Routes()); err != nil {
		logging.Logger.Errorf("failed to listen and serve, err=%s", err.Error())
		panic(err)
	}
}
