// publishes live-URL transitions over MQTT so overlay and signage devices
// at the venue react without polling the HTTP surface.
package events

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const liveURLTopic = "courtside/live_url"

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// Publisher fans live-URL changes out to the broker. It satisfies
// broadcast.Notifier and must never block or fail the caller.
type Publisher struct {
	client mqtt.Client
}

func NewPublisher(brokerURL, clientID string) (*Publisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}

	return &Publisher{client: client}, nil
}

// LiveURLChanged publishes the new URL (empty when nothing is live) as a
// retained message so late-joining devices get the latest state on
// subscribe.
func (p *Publisher) LiveURLChanged(url string) {
	token := p.client.Publish(liveURLTopic, 1, true, []byte(url))
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			log.Error().Err(err).Str("topic", liveURLTopic).Msg("failed to publish live url")
		}
	}()
}

func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
