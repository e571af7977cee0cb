package mqtt

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltplan/voltplan/core/model"
)

type fakeToken struct {
	err error
}

func (t fakeToken) Wait() bool                     { return true }
func (t fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t fakeToken) Error() error { return t.err }

type fakeClient struct {
	connected  bool
	connectErr error
	publishErr error
	topic      string
	payload    []byte
	retained   bool
}

func (c *fakeClient) IsConnected() bool { return c.connected }
func (c *fakeClient) Connect() paho.Token {
	c.connected = c.connectErr == nil
	return fakeToken{err: c.connectErr}
}
func (c *fakeClient) Disconnect(uint) { c.connected = false }
func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	c.topic = topic
	c.retained = retained
	c.payload = payload.([]byte)
	return fakeToken{err: c.publishErr}
}

func withFakeClient(t *testing.T, cli *fakeClient) {
	t.Helper()
	old := newMQTTClient
	newMQTTClient = func(*paho.ClientOptions) pahoClient { return cli }
	t.Cleanup(func() { newMQTTClient = old })
}

func TestPublisherPublishesResult(t *testing.T) {
	cli := &fakeClient{}
	withFakeClient(t, cli)

	cfg := Config{Enabled: true, Broker: "tcp://localhost:1883", Retained: true}
	cfg.SetDefaults()
	pub, err := NewPublisher(cfg)
	require.NoError(t, err)
	defer pub.Close()

	res := model.ScheduleResult{
		Costs:         -5,
		PowerSchedule: []float64{10, -10},
		SoCSchedule:   []float64{20, 30, 20},
	}
	require.NoError(t, pub.PublishSchedule(res))
	assert.Equal(t, "voltplan/schedule", cli.topic)
	assert.True(t, cli.retained)

	var decoded model.ScheduleResult
	require.NoError(t, json.Unmarshal(cli.payload, &decoded))
	assert.Equal(t, res.Costs, decoded.Costs)
	assert.Equal(t, res.PowerSchedule, decoded.PowerSchedule)
}

func TestPublisherConnectError(t *testing.T) {
	withFakeClient(t, &fakeClient{connectErr: fmt.Errorf("broker down")})

	cfg := Config{Enabled: true, Broker: "tcp://localhost:1883"}
	cfg.SetDefaults()
	_, err := NewPublisher(cfg)
	require.Error(t, err)
}

func TestPublisherPublishError(t *testing.T) {
	cli := &fakeClient{publishErr: fmt.Errorf("not connected")}
	withFakeClient(t, cli)

	cfg := Config{Enabled: true, Broker: "tcp://localhost:1883"}
	cfg.SetDefaults()
	pub, err := NewPublisher(cfg)
	require.NoError(t, err)
	require.Error(t, pub.PublishSchedule(model.ScheduleResult{}))
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Enabled: true}
	require.Error(t, cfg.Validate())
	cfg.Broker = "tcp://localhost:1883"
	require.NoError(t, cfg.Validate())
	require.NoError(t, Config{}.Validate())
}
