package core

import (
	"github.com/rs/zerolog"
)

// MissionService bridges the synchronous request/response surface exposed
// to ground control onto the asynchronous mission planner. Each operation
// issues exactly one planner call and blocks the calling goroutine until
// the planner's completion callback fires. The service imposes no ordering
// between concurrent requests; serializing access to the vehicle is the
// planner's job.
type MissionService struct {
	planner MissionPlanner
	logger  *zerolog.Logger
}

func NewMissionService(planner MissionPlanner, logger *zerolog.Logger) *MissionService {
	return &MissionService{
		planner: planner,
		logger:  logger,
	}
}

// UploadMission sends a flight plan to the planner and reports its result.
// A nil request is treated as an empty mission and a nil response discards
// the result; neither is an error.
func (s *MissionService) UploadMission(rq *UploadMissionRequest, resp *UploadMissionResponse) {
	var mission *WireMission
	if rq != nil {
		mission = rq.Mission
	}
	items := MissionFromWire(mission)

	s.logger.Debug().Int("items", len(items)).Msg("uploading mission")

	pending := NewOneShot[Result]()
	s.planner.UploadMissionAsync(items, pending.Resolve)
	result := pending.Await()

	s.logger.Info().Str("result", result.Name()).Msg("mission upload finished")

	if resp != nil {
		resp.MissionResult.Result = result.Name()
	}
}

// StartMission asks the planner to fly the previously uploaded mission and
// reports its result. The request carries no payload; a nil response
// discards the result.
func (s *MissionService) StartMission(rq *StartMissionRequest, resp *StartMissionResponse) {
	s.logger.Debug().Msg("starting mission")

	pending := NewOneShot[Result]()
	s.planner.StartMissionAsync(pending.Resolve)
	result := pending.Await()

	s.logger.Info().Str("result", result.Name()).Msg("mission start finished")

	if resp != nil {
		resp.MissionResult.Result = result.Name()
	}
}
