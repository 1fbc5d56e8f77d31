package mq

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/appspec/harness/harnesscfg"
	"github.com/appspec/harness/logger"
	"github.com/appspec/harness/models"
)

// MQ_DISCONNECT - disconnect quiesce time in ms
const MQ_DISCONNECT = 250

// MQ_TIMEOUT - timeout for MQ in seconds
const MQ_TIMEOUT = 30

var mqclient mqtt.Client

func setMqOptions(user, password string, opts *mqtt.ClientOptions) {
	broker, _ := harnesscfg.GetMessageQueueEndpoint()
	opts.AddBroker(broker)
	opts.ClientID = "appspec-harness"
	opts.SetUsername(user)
	opts.SetPassword(password)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(time.Second << 2)
	opts.SetKeepAlive(time.Minute)
	opts.SetWriteTimeout(time.Minute)
}

// SetupMQTT - creates a connection to the broker so the harness can hand
// rendered configs to waiting players
func SetupMQTT() {
	opts := mqtt.NewClientOptions()
	setMqOptions(harnesscfg.GetMqUserName(), harnesscfg.GetMqPassword(), opts)
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		logger.Log(0, "connected to message queue")
	})
	opts.SetConnectionLostHandler(func(c mqtt.Client, e error) {
		logger.Log(0, "detected broker connection lost")
	})
	mqclient = mqtt.NewClient(opts)

	connecttimer := time.Now().Add(10 * time.Second)
	for {
		if token := mqclient.Connect(); !token.WaitTimeout(MQ_TIMEOUT*time.Second) || token.Error() != nil {
			logger.Log(0, "unable to connect to broker, retrying ...")
			if time.Now().After(connecttimer) {
				if token.Error() == nil {
					logger.FatalLog("could not connect to broker, token timeout")
				} else {
					logger.FatalLog("could not connect to broker", token.Error().Error())
				}
			}
		} else {
			break
		}
		time.Sleep(2 * time.Second)
	}
}

// IsConnected - function for determining if the mqclient is connected or not
func IsConnected() bool {
	return mqclient != nil && mqclient.IsConnected()
}

// CloseClient - function to close the mq connection from the server
func CloseClient() {
	if mqclient != nil {
		mqclient.Disconnect(MQ_DISCONNECT)
	}
}

// publish - sends a payload to a topic and waits for the broker ack
func publish(topic string, payload []byte) error {
	if mqclient == nil || !mqclient.IsConnected() {
		return errors.New("cannot publish ... mqclient not connected")
	}
	if token := mqclient.Publish(topic, 0, true, payload); !token.WaitTimeout(MQ_TIMEOUT*time.Second) || token.Error() != nil {
		var err error
		if err = token.Error(); err == nil {
			err = errors.New("connection timeout")
		}
		return err
	}
	return nil
}

// PublishRun - pushes each player's rendered config followed by a start
// signal for the whole run. Players subscribe to their config topic before
// the engine starts them, the retained message covers late joiners.
func PublishRun(run *models.RunRecord, cfg *models.ScenarioConfig, rendered map[string]string) error {
	for player, config := range rendered {
		topic := fmt.Sprintf("harness/%s/%s/config", cfg.Name, player)
		if err := publish(topic, []byte(config)); err != nil {
			return fmt.Errorf("publishing config for player %s: %w", player, err)
		}
		logger.Log(2, "published config for player", player, "on", topic)
	}
	signal, err := json.Marshal(run)
	if err != nil {
		return err
	}
	if err := publish(fmt.Sprintf("harness/%s/start", cfg.Name), signal); err != nil {
		return fmt.Errorf("publishing start signal: %w", err)
	}
	return nil
}
