package core

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockPlanner records the uploaded items and hands the completion callback
// back to the test, which plays the asynchronous side of the exchange.
type mockPlanner struct {
	uploadedItems []*MissionItem
	callbackSaved chan ResultCallback
}

func newMockPlanner() *mockPlanner {
	return &mockPlanner{
		callbackSaved: make(chan ResultCallback, 1),
	}
}

func (m *mockPlanner) UploadMissionAsync(items []*MissionItem, callback ResultCallback) {
	m.uploadedItems = items
	m.callbackSaved <- callback
}

func (m *mockPlanner) StartMissionAsync(callback ResultCallback) {
	m.callbackSaved <- callback
}

func setupService() (*MissionService, *mockPlanner) {
	logger := zerolog.New(io.Discard)
	planner := newMockPlanner()
	return NewMissionService(planner, &logger), planner
}

// uploadAndSaveParams runs UploadMission on its own goroutine, waits until
// the planner has received the completion callback, and returns it together
// with a channel that closes when UploadMission returns.
func uploadAndSaveParams(t *testing.T, service *MissionService, planner *mockPlanner,
	rq *UploadMissionRequest, resp *UploadMissionResponse) (ResultCallback, chan struct{}) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.UploadMission(rq, resp)
	}()

	return <-planner.callbackSaved, done
}

func startAndSaveParams(t *testing.T, service *MissionService, planner *mockPlanner,
	resp *StartMissionResponse) (ResultCallback, chan struct{}) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.StartMission(nil, resp)
	}()

	return <-planner.callbackSaved, done
}

func oneItemMission() []*MissionItem {
	return []*MissionItem{
		{
			LatitudeDeg:       41.848695,
			LongitudeDeg:      75.132751,
			RelativeAltitudeM: 50.4,
			SpeedMS:           8.3,
			IsFlyThrough:      false,
			GimbalPitchDeg:    45.2,
			GimbalYawDeg:      90.3,
			CameraAction:      CameraActionNone,
		},
	}
}

func multiItemMission() []*MissionItem {
	return []*MissionItem{
		{
			LatitudeDeg:       41.848695,
			LongitudeDeg:      75.132751,
			RelativeAltitudeM: 50.4,
			SpeedMS:           8.3,
			IsFlyThrough:      false,
			GimbalPitchDeg:    45.2,
			GimbalYawDeg:      90.3,
			CameraAction:      CameraActionNone,
		},
		{
			LatitudeDeg:       46.522626,
			LongitudeDeg:      6.635356,
			RelativeAltitudeM: 76.2,
			SpeedMS:           6.0,
			IsFlyThrough:      true,
			GimbalPitchDeg:    41.2,
			GimbalYawDeg:      70.3,
			CameraAction:      CameraActionTakePhoto,
		},
		{
			LatitudeDeg:       -50.995944711358824,
			LongitudeDeg:      -72.99892046835936,
			RelativeAltitudeM: 24.0,
			SpeedMS:           4.2,
			IsFlyThrough:      false,
			GimbalPitchDeg:    55.0,
			GimbalYawDeg:      68.8,
			CameraAction:      CameraActionStartPhotoInterval,
		},
		{
			LatitudeDeg:       46.522652,
			LongitudeDeg:      6.621356,
			RelativeAltitudeM: 71.2,
			SpeedMS:           7.1,
			IsFlyThrough:      false,
			GimbalPitchDeg:    11.2,
			GimbalYawDeg:      20.3,
			CameraAction:      CameraActionStopPhotoInterval,
		},
		{
			LatitudeDeg:       48.142652,
			LongitudeDeg:      3.626236,
			RelativeAltitudeM: 56.9,
			SpeedMS:           5.4,
			IsFlyThrough:      false,
			GimbalPitchDeg:    14.6,
			GimbalYawDeg:      31.5,
			CameraAction:      CameraActionStartVideo,
		},
		{
			LatitudeDeg:       11.142334,
			LongitudeDeg:      4.622234,
			RelativeAltitudeM: 65.3,
			SpeedMS:           5.7,
			IsFlyThrough:      true,
			GimbalPitchDeg:    17.2,
			GimbalYawDeg:      90.0,
			CameraAction:      CameraActionStopVideo,
		},
	}
}

func uploadRequestFromItems(items []*MissionItem) *UploadMissionRequest {
	return &UploadMissionRequest{Mission: MissionToWire(items)}
}

var resultPairs = []struct {
	name   string
	result Result
}{
	{"UNKNOWN", ResultUnknown},
	{"SUCCESS", ResultSuccess},
	{"ERROR", ResultError},
	{"TOO_MANY_MISSION_ITEMS", ResultTooManyMissionItems},
	{"BUSY", ResultBusy},
	{"TIMEOUT", ResultTimeout},
	{"INVALID_ARGUMENT", ResultInvalidArgument},
	{"UNSUPPORTED", ResultUnsupported},
	{"NO_MISSION_AVAILABLE", ResultNoMissionAvailable},
	{"FAILED_TO_OPEN_QGC_PLAN", ResultFailedToOpenQGCPlan},
	{"FAILED_TO_PARSE_QGC_PLAN", ResultFailedToParseQGCPlan},
	{"UNSUPPORTED_MISSION_CMD", ResultUnsupportedMissionCmd},
}

func TestUploadMissionDoesNotFailWhenArgsAreNil(t *testing.T) {
	service, planner := setupService()

	callback, done := uploadAndSaveParams(t, service, planner, nil, nil)
	callback(ResultUnknown)
	<-done
}

func TestUploadMissionUploadsEmptyMissionWhenNilRequest(t *testing.T) {
	service, planner := setupService()

	callback, done := uploadAndSaveParams(t, service, planner, nil, nil)
	callback(ResultUnknown)
	<-done

	assert.Empty(t, planner.uploadedItems)
}

func TestUploadMissionResultIsTranslatedCorrectly(t *testing.T) {
	for _, pair := range resultPairs {
		t.Run(pair.name, func(t *testing.T) {
			service, planner := setupService()
			resp := &UploadMissionResponse{}

			callback, done := uploadAndSaveParams(t, service, planner,
				uploadRequestFromItems(nil), resp)
			callback(pair.result)
			<-done

			assert.Equal(t, pair.name, resp.MissionResult.Result)
		})
	}
}

func checkItemsAreUploadedCorrectly(t *testing.T, items []*MissionItem) {
	t.Helper()

	service, planner := setupService()

	callback, done := uploadAndSaveParams(t, service, planner,
		uploadRequestFromItems(items), nil)
	callback(ResultUnknown)
	<-done

	require.Len(t, planner.uploadedItems, len(items))
	if diff := cmp.Diff(items, planner.uploadedItems); diff != "" {
		t.Errorf("uploaded mission mismatch (-want +got):\n%s", diff)
	}
}

func TestUploadMissionUploadsOneItemMission(t *testing.T) {
	checkItemsAreUploadedCorrectly(t, oneItemMission())
}

func TestUploadMissionUploadsMultipleItemsMission(t *testing.T) {
	checkItemsAreUploadedCorrectly(t, multiItemMission())
}

func TestUploadMissionPreservesItemAtIndex(t *testing.T) {
	service, planner := setupService()

	callback, done := uploadAndSaveParams(t, service, planner,
		uploadRequestFromItems(multiItemMission()), nil)
	callback(ResultSuccess)
	<-done

	require.Len(t, planner.uploadedItems, 6)
	assert.Equal(t, -50.995944711358824, planner.uploadedItems[2].LatitudeDeg)
	assert.Equal(t, CameraActionStartPhotoInterval, planner.uploadedItems[2].CameraAction)
}

func TestStartMissionDoesNotFailWhenArgsAreNil(t *testing.T) {
	service, planner := setupService()

	callback, done := startAndSaveParams(t, service, planner, nil)
	callback(ResultUnknown)
	<-done
}

func TestStartMissionResultIsTranslatedCorrectly(t *testing.T) {
	for _, pair := range resultPairs {
		t.Run(pair.name, func(t *testing.T) {
			service, planner := setupService()
			resp := &StartMissionResponse{}

			callback, done := startAndSaveParams(t, service, planner, resp)
			callback(pair.result)
			<-done

			assert.Equal(t, pair.name, resp.MissionResult.Result)
		})
	}
}
