package core

// Result is the outcome of a mission operation as reported by the planner.
type Result int

const (
	ResultUnknown Result = iota
	ResultSuccess
	ResultError
	ResultTooManyMissionItems
	ResultBusy
	ResultTimeout
	ResultInvalidArgument
	ResultUnsupported
	ResultNoMissionAvailable
	ResultFailedToOpenQGCPlan
	ResultFailedToParseQGCPlan
	ResultUnsupportedMissionCmd
)

var resultNames = map[Result]string{
	ResultUnknown:               "UNKNOWN",
	ResultSuccess:               "SUCCESS",
	ResultError:                 "ERROR",
	ResultTooManyMissionItems:   "TOO_MANY_MISSION_ITEMS",
	ResultBusy:                  "BUSY",
	ResultTimeout:               "TIMEOUT",
	ResultInvalidArgument:       "INVALID_ARGUMENT",
	ResultUnsupported:           "UNSUPPORTED",
	ResultNoMissionAvailable:    "NO_MISSION_AVAILABLE",
	ResultFailedToOpenQGCPlan:   "FAILED_TO_OPEN_QGC_PLAN",
	ResultFailedToParseQGCPlan:  "FAILED_TO_PARSE_QGC_PLAN",
	ResultUnsupportedMissionCmd: "UNSUPPORTED_MISSION_CMD",
}

var resultValues = func() map[string]Result {
	m := make(map[string]Result, len(resultNames))
	for r, name := range resultNames {
		m[name] = r
	}
	return m
}()

// Name returns the canonical wire name of the result.
func (r Result) Name() string {
	name, ok := resultNames[r]
	if !ok {
		return resultNames[ResultUnknown]
	}
	return name
}

// ResultFromName is the inverse of Name. Names outside the canonical set
// decode to ResultUnknown.
func ResultFromName(name string) Result {
	r, ok := resultValues[name]
	if !ok {
		return ResultUnknown
	}
	return r
}
