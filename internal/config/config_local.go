//go:build !gcloud

package config

import (
	"fmt"
	"strings"
)

// Validate accepts an empty NATS_URL, which turns event publishing off.
func (c *PubSubConfig) Validate() error {
	if c.NatsURL == "" {
		return nil
	}

	for _, scheme := range []string{"nats://", "tls://", "ws://", "wss://"} {
		if strings.HasPrefix(c.NatsURL, scheme) {
			return nil
		}
	}

	return fmt.Errorf("NATS_URL %q has no nats, tls or websocket scheme", c.NatsURL)
}
