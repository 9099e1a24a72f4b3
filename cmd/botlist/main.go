// Package main is the entry point for the PancyList Go service.
// It initializes all systems and starts the HTTP API.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PancyStudios/PancyListGo/pkg/botlist"
	"github.com/PancyStudios/PancyListGo/pkg/config"
	"github.com/PancyStudios/PancyListGo/pkg/database"
	"github.com/PancyStudios/PancyListGo/pkg/discord"
	"github.com/PancyStudios/PancyListGo/pkg/errors"
	"github.com/PancyStudios/PancyListGo/pkg/logger"
	"github.com/PancyStudios/PancyListGo/pkg/mqtt"
	"github.com/PancyStudios/PancyListGo/pkg/web"
	"github.com/PancyStudios/PancyListGo/pkg/webhook"
	"github.com/PancyStudios/PancyListGo/pkg/ws"
)

// eventFanout forwards directory events to every wired sink
type eventFanout struct {
	sinks []botlist.EventPublisher
}

func (f *eventFanout) Publish(event botlist.Event) {
	for _, sink := range f.sinks {
		sink.Publish(event)
	}
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting PancyList Go...", "Main")

	// Initialize database
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		if err := db.Disconnect(); err != nil {
			logger.Error(fmt.Sprintf("Error disconnecting database: %v", err), "Main")
		}
	}()

	// Initialize error handler
	errors.Init(cfg.ErrorWebhook, func() {
		_ = db.Disconnect()
	})

	// Initialize the Discord REST client
	discordClient, err := discord.Init(cfg.BotToken, cfg.GuildID)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Initialize MQTT event publishing
	mqttClientID := "pancylist"
	if !cfg.IsProd() {
		mqttClientID = "pancylist_canary"
	}
	mqttPublisher := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttPublisher.Destroy()

	// Live feed hub
	hub := ws.NewHub()
	go func() {
		defer errors.RecoverMiddleware()()
		hub.Run()
	}()

	// Directory core
	svc := botlist.NewService(botlist.Options{
		Bots:      database.NewBotStore(db),
		Users:     database.NewUserStore(db),
		Bans:      database.NewBanStore(db),
		Notify:    webhook.New(cfg.SubmissionsWebhook),
		Reports:   webhook.New(cfg.ReportsWebhook),
		Events:    &eventFanout{sinks: []botlist.EventPublisher{mqttPublisher, hub}},
		Directory: discordClient,
		Enforcer:  discordClient,
	})

	// Initialize web server
	webServer := web.Init()
	web.SetupAPIRoutes(webServer, svc, hub, discordClient)
	webServer.StartAsync(cfg.Port)

	logger.Success("PancyList Go started!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down PancyList Go...", "Main")
}
