package announce

import (
	"fmt"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"inode-msd/internal/logging"
)

const (
	// ServiceType is the mDNS service type the decode service
	// registers under.
	ServiceType = "_inode-decode._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."
)

// Announcer keeps an mDNS registration alive until Shutdown.
type Announcer struct {
	server *zeroconf.Server
}

// Register announces the decode service on the local network.
func Register(instance string, port int) (*Announcer, error) {
	srv, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, []string{"txtvers=1"}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	logging.Info("mDNS service registered",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)
	return &Announcer{server: srv}, nil
}

// Shutdown withdraws the announcement.
func (a *Announcer) Shutdown() {
	a.server.Shutdown()
	logging.Info("mDNS service deregistered")
}
