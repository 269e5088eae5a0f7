package stream

import (
	"errors"
	"testing"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	mqtt.Token
	err error
}

func (t *fakeToken) Wait() bool   { return true }
func (t *fakeToken) Error() error { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

type fakePublisher struct {
	messages []published
	err      error
}

func (p *fakePublisher) Publish(topic string, qos byte, _ bool, payload interface{}) mqtt.Token {
	b, _ := payload.([]byte)
	p.messages = append(p.messages, published{topic: topic, qos: qos, payload: b})

	return &fakeToken{err: p.err}
}

type solidAnimation colorful.Color

func (s solidAnimation) CalculateFrame(int64) *Frame {
	f := NewFrame()
	f.Fill(colorful.Color(s))

	return f
}

func TestStreamerSendFrame(t *testing.T) {
	client := new(fakePublisher)
	s := NewStreamer(client, "test/stream", 30, solidAnimation(red), nil)

	require.NoError(t, s.SendFrame(0))
	require.Len(t, client.messages, 1)

	m := client.messages[0]
	assert.Equal(t, "test/stream", m.topic)
	assert.Equal(t, byte(2), m.qos)
	assert.Len(t, m.payload, 2+numPixels*3)
	assert.Equal(t, []byte{255, 0, 0}, m.payload[2:5])

	client.err = errors.New("offline")
	assert.EqualError(t, s.SendFrame(33), "offline")
}
