package flightd

import "github.com/aeroroute/drone-mission-bridge/core"

const (
	cmdUploadMission = "upload_mission"
	cmdStartMission  = "start_mission"
)

// Command is one request to the flight daemon, newline-delimited JSON over
// the unix socket.
type Command struct {
	Cmd     string            `json:"cmd"`
	Mission *core.WireMission `json:"mission,omitempty"`
}

// Completion is the daemon's reply once the command has finished.
type Completion struct {
	Cmd    string `json:"cmd"`
	Result string `json:"result"`
}
