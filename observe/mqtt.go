package observe

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/sepro-lang/sepro/core"
)

// MQTTLogger publishes probe records and actuator notifications as JSON
// to an MQTT broker, one topic per concern. It is grounded on the
// broker/client setup cmd/sio uses for its own mqtt.Client.
type MQTTLogger struct {
	Debug bool

	RecordTopic       string
	NotificationTopic string
	QoS               byte

	client mqtt.Client
}

type mqttRecord struct {
	Step   int                    `json:"step"`
	Values map[string]float64 `json:"values"`
}

type mqttNotification struct {
	Step int    `json:"step"`
	Name string `json:"name"`
}

// NewMQTTLogger connects to broker with the given clientId and
// returns a logger that publishes to recordTopic/notificationTopic.
func NewMQTTLogger(broker, clientId, recordTopic, notificationTopic string) (*MQTTLogger, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientId)
	opts.SetConnectTimeout(10 * time.Second)
	opts.OnConnectionLost = func(client mqtt.Client, err error) {
		log.Printf("observe: mqtt connection lost: %v", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}

	return &MQTTLogger{
		RecordTopic:       recordTopic,
		NotificationTopic: notificationTopic,
		QoS:               1,
		client:            client,
	}, nil
}

func (l *MQTTLogger) logf(format string, args ...interface{}) {
	if !l.Debug {
		return
	}
	log.Printf("observe: mqtt: "+format, args...)
}

func (l *MQTTLogger) Close() {
	l.client.Disconnect(250)
}

func (l *MQTTLogger) LoggingWillStart(measures []*core.Measure, steps int) {
	l.logf("run starting, %d steps", steps)
}

func (l *MQTTLogger) LoggingDidEnd(steps int) {
	l.logf("run ended after %d steps", steps)
}

func (l *MQTTLogger) LogRecord(step int, values map[core.Symbol]float64) {
	vs := make(map[string]float64, len(values))
	for sym, v := range values {
		vs[sym.String()] = v
	}
	js, err := json.Marshal(mqttRecord{Step: step, Values: vs})
	if err != nil {
		l.logf("marshal record error: %v", err)
		return
	}
	token := l.client.Publish(l.RecordTopic, l.QoS, false, js)
	token.Wait()
	if err := token.Error(); err != nil {
		l.logf("publish record error: %v", err)
	}
}

func (l *MQTTLogger) LogNotification(step int, name core.Symbol) {
	js, err := json.Marshal(mqttNotification{Step: step, Name: name.String()})
	if err != nil {
		l.logf("marshal notification error: %v", err)
		return
	}
	token := l.client.Publish(l.NotificationTopic, l.QoS, false, js)
	token.Wait()
	if err := token.Error(); err != nil {
		l.logf("publish notification error: %v", fmt.Errorf("topic %s: %w", l.NotificationTopic, err))
	}
}

// LogWarning logs locally rather than publishing; a probe-folding
// warning has no subscriber-facing topic of its own.
func (l *MQTTLogger) LogWarning(step int, message string) {
	l.logf("step %d warning: %s", step, message)
}
