package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/stream"
	"github.com/sgostarter/i/l"
)

type app struct {
	Config     *stream.Config
	Client     mqtt.Client
	Catalog    *easing.Catalog
	Controller *stream.Controller
	Streamer   *stream.Streamer
	logger     l.Wrapper
}

func newApp(logger l.Wrapper) *app {
	a := new(app)
	a.Catalog = easing.NewCatalog()
	a.logger = logger

	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	a.logger.WithFields(l.StringField("broker", a.Config.Mqtt.URL)).Info("connected")
}

func (a *app) handleConfigChange(c *stream.Config) {
	playlist, err := stream.NewPlaylist(c.Animations, a.Catalog)
	if err != nil {
		a.logger.WithFields(l.ErrorField(err)).Error("reloaded config rejected")

		return
	}

	a.Controller.SetPlaylist(playlist, c.TransitionTime)
	a.logger.WithFields(l.IntField("animations", playlist.Len())).Info("playlist reloaded")
}

func (a *app) run(ctx context.Context) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		a.logger.WithFields(l.ErrorField(token.Error())).Fatal("connect")
	}
	defer a.Client.Disconnect(250)

	go a.Controller.Run(ctx, time.Duration(a.Config.AnimationTime*float64(time.Second)))
	a.Streamer.Run(ctx)
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML or TOML config file.")
	watch := flag.Bool("watch", false, "Reload the animations when the config file changes.")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	// Read the config
	a := newApp(logger)
	config, err := stream.LoadConfig(*configPath)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("path", *configPath)).Fatal("load config")
	}
	a.Config = config

	playlist, err := stream.NewPlaylist(config.Animations, a.Catalog)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("build playlist")
	}

	options := mqtt.NewClientOptions().
		AddBroker(config.Mqtt.URL).
		SetClientID(config.Mqtt.ClientID).
		SetUsername(config.Mqtt.Username).
		SetPassword(config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	a.Controller = stream.NewController(playlist, config.TransitionTime, 0, logger)
	a.Streamer = stream.NewStreamer(a.Client, config.Mqtt.Topics.Stream, config.FrameRate, a.Controller, logger)

	if *watch {
		w := stream.NewWatcher(*configPath, logger)
		w.OnChange(a.handleConfigChange)
		if err := w.Watch(); err != nil {
			logger.WithFields(l.ErrorField(err)).Fatal("watch config")
		}
		defer w.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a.run(ctx)
}
