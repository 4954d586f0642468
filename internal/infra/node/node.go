package node

import (
	"os"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Node identifies the running workspace process.
type Node struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
}

// Set at build time through -ldflags.
var Version = "development"
var CommitHash = "unknown"

var (
	current     *Node
	currentOnce sync.Once
)

// Current returns the node description, computed once per process.
func Current() *Node {
	currentOnce.Do(func() {
		current = &Node{
			ID:         uuid.New().String(),
			Hostname:   hostname(),
			Version:    Version,
			CommitHash: CommitHash,
		}
	})
	return current
}

// Attributes returns the resource attributes exported with traces and metrics.
func (n *Node) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.ServiceInstanceID(n.ID),
		semconv.ServiceVersion(n.Version),
		semconv.HostName(n.Hostname),
		attribute.String("vcs.commit", n.CommitHash),
	}
}

// LogValues returns key/value pairs for startup logging.
func (n *Node) LogValues() []any {
	return []any{
		"node_id", n.ID,
		"hostname", n.Hostname,
		"version", n.Version,
		"commit", n.CommitHash,
	}
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "localhost"
	}
	return name
}
