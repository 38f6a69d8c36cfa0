package flightd

import (
	"encoding/json"
	"net"

	"github.com/aeroroute/drone-mission-bridge/core"
	"github.com/rs/zerolog"
)

type pendingCmd struct {
	cmd      string
	mission  *core.WireMission
	callback core.ResultCallback
}

// Adapter talks to the onboard flight daemon over a unix socket and
// implements core.MissionPlanner. Commands are queued on a channel and
// executed one at a time by the Run loop, which owns the connection; the
// completion callbacks therefore fire on the adapter's goroutine, never on
// the caller's.
type Adapter struct {
	socketName string
	stopChan   chan bool
	cmdChan    chan *pendingCmd
	logger     *zerolog.Logger
}

func NewAdapter(socketName string, queueSize int, logger *zerolog.Logger) *Adapter {
	return &Adapter{
		socketName: socketName,
		stopChan:   make(chan bool, 1),
		cmdChan:    make(chan *pendingCmd, queueSize),
		logger:     logger,
	}
}

func (a *Adapter) Run() {
	conn, err := net.Dial("unix", a.socketName)
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to connect to socket")
		return
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	dec := json.NewDecoder(conn)

main_loop:
	for {
		select {
		case c := <-a.cmdChan:
			a.exchange(enc, dec, c)
		case <-a.stopChan:
			break main_loop
		}
	}
}

func (a *Adapter) Stop() {
	a.stopChan <- true
}

// UploadMissionAsync queues a flight plan upload. The callback fires once
// the daemon has acknowledged the plan.
func (a *Adapter) UploadMissionAsync(items []*core.MissionItem, callback core.ResultCallback) {
	a.cmdChan <- &pendingCmd{
		cmd:      cmdUploadMission,
		mission:  core.MissionToWire(items),
		callback: callback,
	}
}

// StartMissionAsync queues a mission start. The callback fires once the
// daemon has acted on it.
func (a *Adapter) StartMissionAsync(callback core.ResultCallback) {
	a.cmdChan <- &pendingCmd{
		cmd:      cmdStartMission,
		callback: callback,
	}
}

func (a *Adapter) exchange(enc *json.Encoder, dec *json.Decoder, c *pendingCmd) {
	rq := &Command{
		Cmd:     c.cmd,
		Mission: c.mission,
	}

	err := enc.Encode(rq)
	if err != nil {
		a.logger.Error().Err(err).Str("cmd", c.cmd).Msg("failed to send command")
		c.callback(core.ResultError)
		return
	}

	var completion Completion
	err = dec.Decode(&completion)
	if err != nil {
		a.logger.Error().Err(err).Str("cmd", c.cmd).Msg("failed to read completion")
		c.callback(core.ResultError)
		return
	}

	a.logger.Debug().Str("cmd", completion.Cmd).
		Str("result", completion.Result).Msg("command completed")

	c.callback(core.ResultFromName(completion.Result))
}
