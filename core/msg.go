package core

// Wire representation of missions and results, shared by every transport
// adapter. Field names follow the ground-control message schema.

const (
	cameraActionNone               = "NONE"
	cameraActionTakePhoto          = "TAKE_PHOTO"
	cameraActionStartPhotoInterval = "START_PHOTO_INTERVAL"
	cameraActionStopPhotoInterval  = "STOP_PHOTO_INTERVAL"
	cameraActionStartVideo         = "START_VIDEO"
	cameraActionStopVideo          = "STOP_VIDEO"
)

type WireMissionItem struct {
	LatitudeDeg       float64 `json:"latitude_deg"`
	LongitudeDeg      float64 `json:"longitude_deg"`
	RelativeAltitudeM float32 `json:"relative_altitude_m"`
	SpeedMS           float32 `json:"speed_m_s"`
	IsFlyThrough      bool    `json:"is_fly_through"`
	GimbalPitchDeg    float32 `json:"gimbal_pitch_deg"`
	GimbalYawDeg      float32 `json:"gimbal_yaw_deg"`
	CameraAction      string  `json:"camera_action"`
}

type WireMission struct {
	MissionItems []*WireMissionItem `json:"mission_items"`
}

type UploadMissionRequest struct {
	Mission *WireMission `json:"mission,omitempty"`
}

type StartMissionRequest struct {
}

type MissionResult struct {
	Result string `json:"result"`
}

type UploadMissionResponse struct {
	MissionResult MissionResult `json:"mission_result"`
}

type StartMissionResponse struct {
	MissionResult MissionResult `json:"mission_result"`
}

var cameraActionNames = map[CameraAction]string{
	CameraActionNone:               cameraActionNone,
	CameraActionTakePhoto:          cameraActionTakePhoto,
	CameraActionStartPhotoInterval: cameraActionStartPhotoInterval,
	CameraActionStopPhotoInterval:  cameraActionStopPhotoInterval,
	CameraActionStartVideo:         cameraActionStartVideo,
	CameraActionStopVideo:          cameraActionStopVideo,
}

var cameraActionValues = func() map[string]CameraAction {
	m := make(map[string]CameraAction, len(cameraActionNames))
	for a, name := range cameraActionNames {
		m[name] = a
	}
	return m
}()

// CameraActionFromWire decodes a wire camera action. Unrecognized values
// degrade to CameraActionNone rather than failing the translation.
func CameraActionFromWire(name string) CameraAction {
	a, ok := cameraActionValues[name]
	if !ok {
		return CameraActionNone
	}
	return a
}

// WireName returns the wire form of the camera action. Unknown values are
// reported as NONE, mirroring CameraActionFromWire.
func (a CameraAction) WireName() string {
	name, ok := cameraActionNames[a]
	if !ok {
		return cameraActionNone
	}
	return name
}

// ToDomain copies the wire item into its domain form, field for field.
func (w *WireMissionItem) ToDomain() *MissionItem {
	return &MissionItem{
		LatitudeDeg:       w.LatitudeDeg,
		LongitudeDeg:      w.LongitudeDeg,
		RelativeAltitudeM: w.RelativeAltitudeM,
		SpeedMS:           w.SpeedMS,
		IsFlyThrough:      w.IsFlyThrough,
		GimbalPitchDeg:    w.GimbalPitchDeg,
		GimbalYawDeg:      w.GimbalYawDeg,
		CameraAction:      CameraActionFromWire(w.CameraAction),
	}
}

// WireItemFromDomain is the inverse of ToDomain.
func WireItemFromDomain(item *MissionItem) *WireMissionItem {
	return &WireMissionItem{
		LatitudeDeg:       item.LatitudeDeg,
		LongitudeDeg:      item.LongitudeDeg,
		RelativeAltitudeM: item.RelativeAltitudeM,
		SpeedMS:           item.SpeedMS,
		IsFlyThrough:      item.IsFlyThrough,
		GimbalPitchDeg:    item.GimbalPitchDeg,
		GimbalYawDeg:      item.GimbalYawDeg,
		CameraAction:      item.CameraAction.WireName(),
	}
}

// MissionFromWire decodes an ordered wire mission into domain items,
// preserving order and cardinality. A nil mission decodes to the empty
// mission.
func MissionFromWire(mission *WireMission) []*MissionItem {
	if mission == nil {
		return []*MissionItem{}
	}

	items := make([]*MissionItem, 0, len(mission.MissionItems))
	for _, w := range mission.MissionItems {
		items = append(items, w.ToDomain())
	}
	return items
}

// MissionToWire encodes domain items into a wire mission, preserving order.
func MissionToWire(items []*MissionItem) *WireMission {
	mission := &WireMission{
		MissionItems: make([]*WireMissionItem, 0, len(items)),
	}
	for _, item := range items {
		mission.MissionItems = append(mission.MissionItems, WireItemFromDomain(item))
	}
	return mission
}
