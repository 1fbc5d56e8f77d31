package network

import (
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/appspec/harness/harnesscfg"
	"github.com/appspec/harness/models"
)

// OfflineSim2hURL - fixed switchboard URL for offline scenarios. The .invalid
// TLD can never resolve, so instances configured with it stay unreachable no
// matter what the environment says.
const OfflineSim2hURL = "ws://sim2h.invalid:9000"

// ErrMissingSim2hURL - returned when a sim2h descriptor carries no switchboard URL
var ErrMissingSim2hURL = errors.New("sim2h descriptor has no URL")

// FromEnv - builds the network descriptor from APP_SPEC_NETWORK_TYPE. An
// unsupported or missing value is returned as an error; callers abort startup
// on it, no scenario config may be produced first.
func FromEnv() (models.NetworkDescriptor, error) {
	netType, err := harnesscfg.GetNetworkType()
	if err != nil {
		return models.NetworkDescriptor{}, err
	}
	desc := models.NetworkDescriptor{Type: netType}
	if netType == models.NetworkSim2h {
		desc.Sim2hURL = harnesscfg.GetSim2hURL()
	}
	return desc, nil
}

// Offline - a sim2h descriptor pointing at the fixed unreachable switchboard,
// used to test behavior of instances that cannot reach any peer
func Offline() models.NetworkDescriptor {
	return models.NetworkDescriptor{
		Type:     models.NetworkSim2h,
		Sim2hURL: OfflineSim2hURL,
	}
}

// Probe - attempts a websocket handshake against the descriptor's sim2h URL
// so run creation can warn early when the switchboard is down. Memory and
// websocket transports need no switchboard and always probe clean.
func Probe(desc models.NetworkDescriptor, timeout time.Duration) error {
	if desc.Type != models.NetworkSim2h {
		return nil
	}
	if desc.Sim2hURL == "" {
		return ErrMissingSim2hURL
	}
	dialer := websocket.Dialer{HandshakeTimeout: timeout}
	conn, _, err := dialer.Dial(desc.Sim2hURL, nil)
	if err != nil {
		return fmt.Errorf("sim2h switchboard %s unreachable: %w", desc.Sim2hURL, err)
	}
	return conn.Close()
}
