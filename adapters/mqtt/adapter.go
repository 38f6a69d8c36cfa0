package mqtt

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aeroroute/drone-mission-bridge/core"
)

// Adapter exposes the mission service to ground control over an MQTT
// request/response topic pair. Every inbound request is served on its own
// goroutine because the service blocks until the flight daemon completes
// the operation.
type Adapter struct {
	broker            string
	connTimeout       time.Duration
	username          string
	passwd            string
	droneId           string
	announceTopic     string
	announceInterval  time.Duration
	announceTimeout   time.Duration
	disconnectTimeout time.Duration
	rqTopic           string
	respTopic         string
	certCheck         bool
	client            mqtt.Client
	service           *core.MissionService
	stopChan          chan bool
	responseChan      chan []byte
	logger            *zerolog.Logger
}

func NewAdapter(broker string, connTimeout time.Duration, username string,
	passwd string, droneId string, announceTopic string,
	announceInterval time.Duration,
	announceTimeout time.Duration,
	disconnectTimeout time.Duration,
	certCheck bool, service *core.MissionService,
	logger *zerolog.Logger) *Adapter {

	return &Adapter{
		broker:            broker,
		connTimeout:       connTimeout,
		username:          username,
		passwd:            passwd,
		droneId:           droneId,
		announceTopic:     announceTopic,
		announceInterval:  announceInterval,
		announceTimeout:   announceTimeout,
		disconnectTimeout: disconnectTimeout,
		rqTopic:           fmt.Sprintf("drone/%s/mission/request", droneId),
		respTopic:         fmt.Sprintf("drone/%s/mission/response", droneId),
		certCheck:         certCheck,
		service:           service,
		stopChan:          make(chan bool, 1),
		responseChan:      make(chan []byte, 1000),
		logger:            logger,
	}
}

func (a *Adapter) Run() error {
	a.logger.Info().Msg("starting")
	defer a.logger.Info().Msg("stopping")

	err := a.connect()
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to connect to MQTT broker")
		return err
	}

	defer a.client.Disconnect(uint(a.disconnectTimeout.Milliseconds()))

	ticker := time.NewTicker(a.announceInterval)
	defer ticker.Stop()

main_loop:
	for {
		select {
		case <-a.stopChan:
			break main_loop
		case <-ticker.C:
			a.logger.Debug().Msg("announce")

			token := a.client.Publish(a.announceTopic, 2, false, a.droneId)
			if token.WaitTimeout(a.announceTimeout) == false {
				a.logger.Error().Msg("timeout expired while publishing announce message")
			} else if err := token.Error(); err != nil {
				a.logger.Error().Err(err).Msg("error publishing announce message")
			}
		case resp := <-a.responseChan:
			a.client.Publish(a.respTopic, 2, false, resp)
		}
	}

	return nil
}

func (a *Adapter) Stop() {
	a.stopChan <- true
}

// handleRequest services one envelope and returns the encoded response, or
// nil when the envelope is undecodable or names an unknown op.
func (a *Adapter) handleRequest(payload []byte) []byte {
	var rq Request
	err := json.Unmarshal(payload, &rq)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to unmarshal request")
		return nil
	}
	if rq.ID == "" {
		rq.ID = uuid.NewString()
	}

	resp := &Response{
		ID: rq.ID,
		Op: rq.Op,
	}

	switch rq.Op {
	case opUploadMission:
		resp.Upload = &core.UploadMissionResponse{}
		a.service.UploadMission(rq.Upload, resp.Upload)
	case opStartMission:
		resp.Start = &core.StartMissionResponse{}
		a.service.StartMission(rq.Start, resp.Start)
	default:
		a.logger.Error().Str("op", rq.Op).Msg("unknown operation")
		return nil
	}

	data, err := json.Marshal(resp)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to marshal response")
		return nil
	}

	return data
}

func (a *Adapter) connect() error {
	opts := mqtt.NewClientOptions().AddBroker(a.broker).SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetCredentialsProvider(func() (username string, password string) {
		return a.username, a.passwd
	})
	opts.SetClientID(a.droneId)
	tlsConfig := &tls.Config{
		InsecureSkipVerify: !a.certCheck,
	}
	opts.SetTLSConfig(tlsConfig)
	opts.SetOnConnectHandler(func(cl mqtt.Client) {
		// subscribe to request topic
		cl.Subscribe(a.rqTopic, 2, func(cl mqtt.Client, msg mqtt.Message) {
			a.logger.Debug().Msgf("received request: %s", string(msg.Payload()))

			// one worker per request, the service blocks on the planner
			payload := msg.Payload()
			go func() {
				if resp := a.handleRequest(payload); resp != nil {
					a.responseChan <- resp
				}
			}()
		})
	})

	a.client = mqtt.NewClient(opts)
	token := a.client.Connect()

	if token.WaitTimeout(a.connTimeout) == false {
		return errors.New("failed to connect to broker")
	}

	err := token.Error()
	return err
}
