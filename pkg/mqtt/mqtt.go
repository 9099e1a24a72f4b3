// Package mqtt publishes directory events to an MQTT broker so companion
// tooling (the Discord bot, dashboards) can react to list activity.
package mqtt

import (
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/PancyListGo/pkg/botlist"
	"github.com/PancyStudios/PancyListGo/pkg/logger"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const topicPrefix = "botlist/events/"

// Publisher fans directory events out to MQTT topics
type Publisher struct {
	client   mqtt.Client
	clientID string
}

var (
	publisher *Publisher
	once      sync.Once
)

// Init initializes the global MQTT publisher
func Init(host, port, username, password, clientID string) *Publisher {
	once.Do(func() {
		publisher = NewPublisher(host, port, username, password, clientID)
	})
	return publisher
}

// Get returns the global MQTT publisher
func Get() *Publisher {
	return publisher
}

// NewPublisher creates an MQTT publisher and starts connecting in the
// background. Events published while disconnected are dropped.
func NewPublisher(host, port, username, password, clientID string) *Publisher {
	p := &Publisher{clientID: clientID}

	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Connected to the MQTT broker as %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("MQTT connection lost: %v", err), "MQTT")
		})

	p.client = mqtt.NewClient(opts)
	p.client.Connect()

	return p
}

// Publish sends a directory event on its type topic, best-effort
func (p *Publisher) Publish(event botlist.Event) {
	if p.client == nil || !p.client.IsConnected() {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error(fmt.Sprintf("Could not encode event %s: %v", event.ID, err), "MQTT")
		return
	}

	token := p.client.Publish(topicPrefix+event.Type, 0, false, payload)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			logger.Warn(fmt.Sprintf("Could not publish event %s: %v", event.ID, err), "MQTT")
		}
	}()
}

// Destroy disconnects from the broker
func (p *Publisher) Destroy() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
