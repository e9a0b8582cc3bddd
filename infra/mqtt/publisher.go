// Package mqtt publishes evaluation results to an MQTT broker so that
// signalling displays and other consumers can follow the recommendation
// feed without polling the HTTP API.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/railops/sectionctl/core/events"
	"github.com/railops/sectionctl/core/logger"
	infralogger "github.com/railops/sectionctl/infra/logger"
)

// Config defines the connection parameters for the display feed publisher.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "sectionctl"
	}
	if c.Topic == "" {
		c.Topic = "section/recommendations"
	}
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Publisher pushes each completed cycle to the configured topic. Messages
// are published retained so late subscribers see the latest cycle.
type Publisher struct {
	cli   pahoClient
	topic string
	qos   byte
	log   logger.Logger
}

// NewPublisher connects to the broker.
func NewPublisher(cfg Config) (*Publisher, error) {
	cfg.SetDefaults()
	log := infralogger.New("mqtt-publisher")
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(paho.Client) {
		log.Infof("MQTT connected")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &Publisher{cli: c, topic: cfg.Topic, qos: cfg.QoS, log: log}, nil
}

// PublishCycle sends the completed cycle as a JSON payload.
func (p *Publisher) PublishCycle(ev events.CycleCompleted) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal cycle: %w", err)
	}
	token := p.cli.Publish(p.topic, p.qos, true, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish cycle %s: timeout", ev.CycleID)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish cycle %s: %w", ev.CycleID, err)
	}
	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
}
