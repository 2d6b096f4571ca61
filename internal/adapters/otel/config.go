package otel

// Config holds OTEL exporter configuration, read with the HOOKGUARD_OTEL_ prefix.
type Config struct {
	Endpoint string `envconfig:"ENDPOINT"`
	Enabled  bool   `envconfig:"ENABLED"`
	Insecure bool   `envconfig:"INSECURE"`
}
