package notification

import (
	"NetSyncDiff/internal/config"
	"NetSyncDiff/internal/model"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSNotifier publishes finished reports to a NATS server.
type NATSNotifier struct {
	nc *nats.Conn
}

// NewNATSNotifier connects to the NATS server named in cfg.
func NewNATSNotifier(cfg config.NotifyConfig) (model.Notifier, error) {
	nc, err := nats.Connect(cfg.NATSURL,
		nats.Name("netsyncdiff"),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.NATSURL, err)
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &NATSNotifier{nc: nc}, nil
}

// Send publishes body on subject and waits for the server to acknowledge the flush.
func (n *NATSNotifier) Send(subject string, body []byte) error {
	if err := n.nc.Publish(subject, body); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	if err := n.nc.FlushTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("failed to flush NATS connection: %w", err)
	}
	return nil
}

// Close drains and closes the NATS connection.
func (n *NATSNotifier) Close() {
	if n.nc != nil {
		if err := n.nc.Drain(); err != nil {
			log.Printf("Failed to drain NATS connection: %v", err)
			return
		}
		log.Println("NATS connection drained and closed.")
	}
}
