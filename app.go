package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aeroroute/drone-mission-bridge/adapters/flightd"
	"github.com/aeroroute/drone-mission-bridge/adapters/mqtt"
	"github.com/aeroroute/drone-mission-bridge/config"
	"github.com/aeroroute/drone-mission-bridge/core"
)

type App struct {
	cfg            *config.Config
	logger         *zerolog.Logger
	mqttAdapter    *mqtt.Adapter
	flightdAdapter *flightd.Adapter
	service        *core.MissionService
	wg             sync.WaitGroup
}

func NewApp(cfg *config.Config) *App {
	app := &App{
		cfg: cfg,
	}

	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Invalid logLevel: %s, error: %s", cfg.LogLevel, err.Error())
		logLevel = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(logLevel)
	app.logger = &logger

	app.init()

	return app
}

func (app *App) Start() {
	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.flightdAdapter.Run()
	}()

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		err := app.mqttAdapter.Run()
		if err != nil {
			panic("mqtt adapter exited unexpectedly")
		}
	}()
}

func (app *App) Stop() {
	app.mqttAdapter.Stop()
	app.flightdAdapter.Stop()
	app.wg.Wait()
}

func (app *App) init() {
	flightdLogger := app.logger.With().Str("component", "flightd").Logger()
	app.flightdAdapter = flightd.NewAdapter(app.cfg.Flightd.SocketName,
		app.cfg.Flightd.QueueSize,
		&flightdLogger)

	serviceLogger := app.logger.With().Str("component", "mission-service").Logger()
	app.service = core.NewMissionService(app.flightdAdapter, &serviceLogger)

	mqttLogger := app.logger.With().Str("component", "mqtt").Logger()
	app.mqttAdapter = mqtt.NewAdapter(app.cfg.Mqtt.Broker,
		time.Duration(app.cfg.Mqtt.ConnTimeout)*time.Millisecond,
		app.cfg.Mqtt.Username,
		app.cfg.Mqtt.Password,
		app.cfg.Mqtt.DroneId,
		app.cfg.Mqtt.AnnounceTopic,
		time.Duration(app.cfg.Mqtt.AnnounceInterval)*time.Millisecond,
		time.Duration(app.cfg.Mqtt.AnnounceTimeout)*time.Millisecond,
		time.Duration(app.cfg.Mqtt.DisconnectTimeout)*time.Millisecond,
		app.cfg.Mqtt.CertCheck,
		app.service,
		&mqttLogger)
}
