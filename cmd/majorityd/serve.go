package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cafebazaar/majority-vote/internal/core"

	"github.com/cafebazaar/majority-vote/internal/engine"
	"github.com/cafebazaar/majority-vote/internal/tally"

	"github.com/go-redis/redis"
	"github.com/pkg/profile"

	staticCluster "github.com/cafebazaar/majority-vote/internal/cluster/static"
	redisSource "github.com/cafebazaar/majority-vote/internal/source/redis"
	redisTransport "github.com/cafebazaar/majority-vote/internal/transport/redis"
	"github.com/cafebazaar/majority-vote/pkg/majority"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start Server",
	Run:   serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) {
	config := loadConfigOrPanic(cmd)

	if config.Profiling {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	cluster := configureClusterOrPanic(config)
	engine := configureEngine()
	svc := getService(cluster, engine, config)

	server := makeRedisServerOrPanic(svc, config)
	startServerOrPanic(server)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	shutdownServerOrPanic(server)
}

func loadConfigOrPanic(cmd *cobra.Command) *Config {
	config, err := LoadConfig(cmd, "MAJORITYD")
	if err != nil {
		log.WithError(err).Panic("Failed to load configurations")
	}
	return config
}

func configureEngine() majority.Engine {
	return engine.New(tally.New)
}

func configureClusterOrPanic(config *Config) majority.Cluster {
	if config.StaticDiscovery != "" || config.LocalConnection != "" {
		return configureStaticDiscoveryClusterOrPanic(config)
	}

	log.Panicf("no suitable cluster formation available: %v", config)
	return nil
}

func configureStaticDiscoveryClusterOrPanic(config *Config) majority.Cluster {
	hosts := strings.Split(config.StaticDiscovery, ",")
	var sources []majority.Source

	for _, host := range hosts {
		sources = append(sources, connectToHost(strings.TrimSpace(host)))
	}

	var options []staticCluster.Option

	if config.LocalConnection != "" {
		options = append(options,
			staticCluster.WithLocal(connectToHost(config.LocalConnection)))
	}

	return staticCluster.New(sources, options...)
}

func connectToHost(host string) majority.Source {
	client := redis.NewClient(&redis.Options{Addr: host})
	return redisSource.New(client, host)
}

func getService(cluster majority.Cluster,
	engine majority.Engine,
	config *Config) majority.Service {

	var options []core.Option
	if config.DefaultReadConsistency != "" {
		options = append(options,
			core.WithDefaultReadConsistency(convertConsistencyOrPanic(config.DefaultReadConsistency)))
	}

	svc := core.New(cluster, engine, options...)

	return svc
}

func convertConsistencyOrPanic(consistency string) majority.ConsistencyLevel {
	switch strings.ToLower(consistency) {
	case "1":
		return majority.ConsistencyLevel_ONE

	case "one":
		return majority.ConsistencyLevel_ONE

	case "all":
		return majority.ConsistencyLevel_ALL

	case "majority":
		return majority.ConsistencyLevel_MAJORITY

	default:
		log.Panicf("unrecognized consistency level: %v", consistency)
		return majority.ConsistencyLevel_MAJORITY
	}
}

func makeRedisServerOrPanic(svc majority.Service, config *Config) majority.Server {
	readConsistency := majority.ConsistencyLevel_MAJORITY

	if config.DefaultReadConsistency != "" {
		readConsistency = convertConsistencyOrPanic(config.DefaultReadConsistency)
	}

	return redisTransport.New(svc, config.RedisListenPort, readConsistency)
}

func startServerOrPanic(server majority.Server) {
	err := server.Start()
	if err != nil {
		panicWithError(err, "failed to start server")
	}
}

func shutdownServerOrPanic(server majority.Server) {
	if err := server.Close(); err != nil {
		panicWithError(err, "failed to close server")
	}
}

func panicWithError(err error, format string, args ...interface{}) {
	log.WithError(err).Panicf(format, args...)
}
