package config

import "time"

const (
	defaultWebhookURL      = "http://localhost:5000/webhook"
	defaultReceiverAddr    = "127.0.0.1:5001"
	defaultCallbackWait    = time.Second
	defaultStartupDelay    = time.Second
	defaultReferenceAddr   = "127.0.0.1:5000"
	defaultCallbackBaseURL = "http://127.0.0.1:5001"
	defaultWebhookToken    = "meu-token-secreto"
	defaultDedupeTTL       = time.Hour
)

// Settings contains the probe config.
type Settings struct {
	LogLevel     string `env:"LOG_LEVEL"`
	ServiceName  string `env:"SERVICE_NAME"`
	WebhookURL   string `env:"WEBHOOK_URL"`
	ReceiverAddr string `env:"RECEIVER_ADDR"`
	// CallbackWait is how long a scenario waits for an asynchronous callback.
	CallbackWait time.Duration `env:"CALLBACK_WAIT"`
	StartupDelay time.Duration `env:"STARTUP_DELAY"`
	// RequestTimeout of zero means no client timeout.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ApplyDefaults fills every unset field with its default.
func (s *Settings) ApplyDefaults() {
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = "webhook-probe"
	}
	if s.WebhookURL == "" {
		s.WebhookURL = defaultWebhookURL
	}
	if s.ReceiverAddr == "" {
		s.ReceiverAddr = defaultReceiverAddr
	}
	if s.CallbackWait <= 0 {
		s.CallbackWait = defaultCallbackWait
	}
	if s.StartupDelay < 0 {
		s.StartupDelay = 0
	} else if s.StartupDelay == 0 {
		s.StartupDelay = defaultStartupDelay
	}
}

// ReferenceSettings contains the config of the reference webhook.
type ReferenceSettings struct {
	LogLevel        string        `env:"LOG_LEVEL"`
	ServiceName     string        `env:"SERVICE_NAME"`
	ListenAddr      string        `env:"LISTEN_ADDR"`
	WebhookToken    string        `env:"WEBHOOK_TOKEN"`
	CallbackBaseURL string        `env:"CALLBACK_BASE_URL"`
	DedupeTTL       time.Duration `env:"DEDUPE_TTL"`
}

// ApplyDefaults fills every unset field with its default.
func (s *ReferenceSettings) ApplyDefaults() {
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = "reference-webhook"
	}
	if s.ListenAddr == "" {
		s.ListenAddr = defaultReferenceAddr
	}
	if s.WebhookToken == "" {
		s.WebhookToken = defaultWebhookToken
	}
	if s.CallbackBaseURL == "" {
		s.CallbackBaseURL = defaultCallbackBaseURL
	}
	if s.DedupeTTL <= 0 {
		s.DedupeTTL = defaultDedupeTTL
	}
}
