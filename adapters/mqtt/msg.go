package mqtt

import "github.com/aeroroute/drone-mission-bridge/core"

const (
	opUploadMission = "upload_mission"
	opStartMission  = "start_mission"
)

// Request is the envelope ground control publishes on the request topic.
// Exactly one operation payload is expected; a missing upload payload is
// legal and means an empty mission.
type Request struct {
	ID     string                     `json:"id"`
	Op     string                     `json:"op"`
	Upload *core.UploadMissionRequest `json:"upload,omitempty"`
	Start  *core.StartMissionRequest  `json:"start,omitempty"`
}

// Response echoes the request id and op and carries the matching result.
type Response struct {
	ID     string                      `json:"id"`
	Op     string                      `json:"op"`
	Upload *core.UploadMissionResponse `json:"upload,omitempty"`
	Start  *core.StartMissionResponse  `json:"start,omitempty"`
}
