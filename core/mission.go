package core

// CameraAction is the camera command attached to a mission item.
type CameraAction int

const (
	CameraActionNone CameraAction = iota
	CameraActionTakePhoto
	CameraActionStartPhotoInterval
	CameraActionStopPhotoInterval
	CameraActionStartVideo
	CameraActionStopVideo
)

// MissionItem is one point of a flight plan.
type MissionItem struct {
	LatitudeDeg       float64
	LongitudeDeg      float64
	RelativeAltitudeM float32
	SpeedMS           float32
	// IsFlyThrough is false when the vehicle must stop at the item.
	IsFlyThrough   bool
	GimbalPitchDeg float32
	GimbalYawDeg   float32
	CameraAction   CameraAction
}

// ResultCallback delivers the outcome of an asynchronous mission operation.
// It is invoked exactly once per operation, on the planner's own goroutine.
type ResultCallback func(Result)

// MissionPlanner is the asynchronous mission-execution capability the
// service delegates to. Both operations are fire-and-forget: they queue the
// work and return immediately, reporting the outcome through the callback.
type MissionPlanner interface {
	UploadMissionAsync(items []*MissionItem, callback ResultCallback)
	StartMissionAsync(callback ResultCallback)
}
