package stream

import (
	"context"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sgostarter/i/l"
)

// Publisher is the part of mqtt.Client the Streamer needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client    Publisher
	topic     string
	interval  time.Duration
	animation Animation
	logger    l.Wrapper
}

// NewStreamer creates an instance of a Streamer sending frameRate frames per second.
func NewStreamer(client Publisher, topic string, frameRate float64, animation Animation, logger l.Wrapper) *Streamer {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	s := new(Streamer)
	s.client = client
	s.topic = topic
	s.interval = time.Duration(float64(time.Second) / frameRate)
	s.animation = animation
	s.logger = logger.WithFields(l.StringField(l.ClsKey, "Streamer"))

	return s
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	f := s.animation.CalculateFrame(runtimeMs)
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	token := s.client.Publish(s.topic, 2, false, b)
	token.Wait()

	return token.Error()
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) {
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-publishTimer.C:
			if err := s.SendFrame(time.Since(start).Milliseconds()); err != nil {
				s.logger.WithFields(l.ErrorField(err), l.StringField("topic", s.topic)).Error("send frame")
			}
		}
	}
}
