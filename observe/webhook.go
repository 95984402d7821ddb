package observe

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/sepro-lang/sepro/core"
)

// WebhookLogger POSTs probe records and actuator notifications to a URL
// as JSON. It keeps a single http.Client with a cookiejar across
// calls rather than building one per request, the same tradeoff
// cmd/mcrew/http.go's HTTPRequest.Do documents and works around.
type WebhookLogger struct {
	Debug bool

	RecordURL       string
	NotificationURL string

	client *http.Client
}

// NewWebhookLogger builds a WebhookLogger posting records to
// recordURL and notifications to notificationURL. Either may be
// empty to suppress that kind of post.
func NewWebhookLogger(recordURL, notificationURL string) (*WebhookLogger, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	return &WebhookLogger{
		RecordURL:       recordURL,
		NotificationURL: notificationURL,
		client:          &http.Client{Jar: jar, Timeout: 10 * time.Second},
	}, nil
}

func (l *WebhookLogger) logf(format string, args ...interface{}) {
	if !l.Debug {
		return
	}
	log.Printf("observe: webhook: "+format, args...)
}

func (l *WebhookLogger) post(url string, body interface{}) {
	if url == "" {
		return
	}
	js, err := json.Marshal(body)
	if err != nil {
		l.logf("marshal error: %v", err)
		return
	}
	resp, err := l.client.Post(url, "application/json", bytes.NewReader(js))
	if err != nil {
		l.logf("post %s error: %v", url, err)
		return
	}
	resp.Body.Close()
	l.logf("post %s status %s", url, resp.Status)
}

func (l *WebhookLogger) LoggingWillStart(measures []*core.Measure, steps int) {}

func (l *WebhookLogger) LoggingDidEnd(steps int) {}

func (l *WebhookLogger) LogRecord(step int, values map[core.Symbol]float64) {
	vs := make(map[string]float64, len(values))
	for sym, v := range values {
		vs[sym.String()] = v
	}
	l.post(l.RecordURL, mqttRecord{Step: step, Values: vs})
}

func (l *WebhookLogger) LogNotification(step int, name core.Symbol) {
	l.post(l.NotificationURL, mqttNotification{Step: step, Name: name.String()})
}

// LogWarning logs locally; a probe-folding warning has no webhook URL
// of its own to post to.
func (l *WebhookLogger) LogWarning(step int, message string) {
	l.logf("step %d warning: %s", step, message)
}
