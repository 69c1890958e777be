package models

import "strconv"

// CookState tracks a cook through its lifecycle as reported by the primary API.
type CookState int

const (
	CookStateNotStarted CookState = iota
	CookStateConfigured
	CookStateStarted
	CookStateReadyForResting
	CookStateResting
	CookStateSlightlyUnderdone
	CookStateFinished
	CookStateSlightlyOverdone
	CookStateOvercook
)

func (s CookState) String() string {
	switch s {
	case CookStateNotStarted:
		return "NOT_STARTED"
	case CookStateConfigured:
		return "CONFIGURED"
	case CookStateStarted:
		return "STARTED"
	case CookStateReadyForResting:
		return "READY_FOR_RESTING"
	case CookStateResting:
		return "RESTING"
	case CookStateSlightlyUnderdone:
		return "SLIGHTLY_UNDERDONE"
	case CookStateFinished:
		return "FINISHED"
	case CookStateSlightlyOverdone:
		return "SLIGHTLY_OVERDONE"
	case CookStateOvercook:
		return "OVERCOOK"
	default:
		return "COOK_STATE_" + strconv.Itoa(int(s))
	}
}

// MasterType identifies the kind of device that recorded a cook.
type MasterType int

const (
	MasterTypeBlock MasterType = iota
	MasterTypeIOS
	MasterTypeAndroid
	MasterTypeProbeSim
	MasterTypeBlockV22P
	MasterTypeBlockV24P
)

// ProbeType identifies the physical probe hardware. Values are sparse; the
// vendor reuses the numbering across hardware generations.
type ProbeType int

const (
	ProbeTypeProbe           ProbeType = 0
	ProbeTypeBlockProbeOne   ProbeType = 1
	ProbeTypeBlockProbeTwo   ProbeType = 2
	ProbeTypeBlockProbeThree ProbeType = 3
	ProbeTypeBlockProbeFour  ProbeType = 4
	ProbeTypeThermomixProbe  ProbeType = 5
	ProbeTypeTraegerProbe    ProbeType = 6
	ProbeTypeBlock           ProbeType = 8

	ProbeTypeGen2Probe           ProbeType = 16
	ProbeTypeGen2BlockProbeOne   ProbeType = 17
	ProbeTypeGen2BlockProbeTwo   ProbeType = 18
	ProbeTypeGen2BlockProbeThree ProbeType = 19
	ProbeTypeGen2BlockProbeFour  ProbeType = 20
	ProbeTypeGen2ThermomixProbe  ProbeType = 21
	ProbeTypeGen2TraegerProbe    ProbeType = 22

	ProbeTypeAmber              ProbeType = 64
	ProbeTypeGen2ThermomixPlus  ProbeType = 80
	ProbeTypeGen2Plus           ProbeType = 112
	ProbeTypePlus               ProbeType = 128
	ProbeTypeGen2TraegerPlus    ProbeType = 144
	ProbeTypeGen2TwoProbeBlock  ProbeType = 162
	ProbeTypeGen2FourProbeBlock ProbeType = 164
)

// AlarmType selects what an alarm's limit means: a fixed-point temperature
// threshold for the ambient/internal kinds, seconds for the time-based kinds.
type AlarmType int

const (
	AlarmTypeMinAmbient AlarmType = iota
	AlarmTypeMaxAmbient
	AlarmTypeMinInternal
	AlarmTypeMaxInternal
	AlarmTypeTimeFromNow
	AlarmTypeTimeBeforeReady
	AlarmTypeRepeatDuration
	AlarmTypeEstimateReady
)

// TemperatureBased reports whether the alarm limit is a fixed-point
// temperature rather than a duration in seconds.
func (t AlarmType) TemperatureBased() bool {
	return t <= AlarmTypeMaxInternal
}

// AlarmState is the lifecycle of a configured alarm.
type AlarmState int

const (
	AlarmStateNotReady AlarmState = iota
	AlarmStateReady
	AlarmStateFired
	AlarmStateDismissed
)

func (s AlarmState) String() string {
	switch s {
	case AlarmStateNotReady:
		return "NOT_READY"
	case AlarmStateReady:
		return "READY"
	case AlarmStateFired:
		return "FIRED"
	case AlarmStateDismissed:
		return "DISMISSED"
	default:
		return "ALARM_STATE_" + strconv.Itoa(int(s))
	}
}
