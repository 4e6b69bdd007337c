package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/mediassist/mediassist-api/api"
	"github.com/mediassist/mediassist-api/external/gemini"
	"github.com/mediassist/mediassist-api/external/overpass"
	"github.com/mediassist/mediassist-api/external/photon"
	"github.com/mediassist/mediassist-api/predictor"
	"github.com/mediassist/mediassist-api/store"
)

var server *api.Server

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("mediassist")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Load prediction models; the process is useless without them
	registry, err := predictor.LoadRegistry(viper.GetString("models.dir"))
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded all prediction models")

	// AI assistant is optional: the chat endpoint degrades to 503 when
	// no api key is configured
	var assistant gemini.Chat
	if apiKey := viper.GetString("gemini.apikey"); apiKey != "" {
		assistant = gemini.New(apiKey, viper.GetString("gemini.endpoint"), httpClient)
		log.WithField("prefix", "init").Info("Initialized AI assistant client")
	} else {
		log.WithField("prefix", "init").Warn("No AI assistant api key; chat endpoint disabled")
	}

	// Init http server
	server = api.NewServer(
		store.NewSessionStore(),
		store.NewChatStore(),
		registry,
		assistant,
		overpass.New(viper.GetString("overpass.endpoint"), httpClient),
		photon.New(viper.GetString("photon.endpoint"), httpClient),
	)
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
