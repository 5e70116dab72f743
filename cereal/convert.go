package cereal

import (
	"time"

	"pfeifer.dev/pccd/cereal/custom"
	"pfeifer.dev/pccd/pcc"
	"pfeifer.dev/pccd/settings"
)

// Inputs builds a control cycle input from the latest car message. Car
// provided follow time and trim win over the settings.
func Inputs(ci custom.CarInput, s *settings.PccSettings, now time.Time) pcc.Inputs {
	car := pcc.CarState{
		VEgo:                  float64(ci.VEgo()),
		AEgo:                  float64(ci.AEgo()),
		SteeringAngleDeg:      float64(ci.SteeringAngleDeg()),
		BrakePressed:          ci.BrakePressed(),
		Standstill:            ci.Standstill(),
		TurnSignal:            ci.TurnSignal(),
		Imperial:              ci.Imperial(),
		PedalFault:            ci.PedalInterceptorState(),
		PedalIndex:            ci.PedalIndex(),
		CruiseState:           pcc.CruiseState(ci.CruiseState()),
		ForcePedalOverCC:      s.ForcePedalOverCC,
		Buttons:               pcc.CruiseButton(ci.CruiseButtons()),
		FollowTime:            float64(ci.FollowTime()),
		TorqueLevel:           float64(ci.TorqueLevel()),
		UseRadar:              s.UseRadar,
		PedalInterceptorValue: float64(ci.PedalInterceptorValue()),
	}
	if car.FollowTime <= 0 {
		car.FollowTime = float64(s.FollowTime)
	}
	car.Trim, _ = ci.Trim()
	if car.Trim == "" {
		car.Trim = s.Trim
	}

	return pcc.Inputs{
		Now: now,
		Car: car,
		Actuators: pcc.Actuators{
			Gas:   float64(ci.Gas()),
			Brake: float64(ci.Brake()),
		},
		CommandedSpeed:  float64(ci.CommandedSpeed()),
		ControlsEnabled: ci.ControlsEnabled(),
		SpeedLimit: pcc.SpeedLimit{
			Value:  float64(ci.SpeedLimit()),
			Offset: float64(ci.SpeedLimitOffset()) + float64(s.SpeedLimitOffset)*settings.KPH_TO_MS,
			Active: ci.SpeedLimitActive(),
		},
		LaneChange: ci.LaneChange(),
	}
}

// Lead is nil when the radar has no valid lead.
func Lead(rs custom.RadarState) *pcc.Lead {
	if !rs.LeadValid() {
		return nil
	}
	return &pcc.Lead{
		DRel:   float64(rs.DRel()),
		VRel:   float64(rs.VRel()),
		ARel:   float64(rs.ARel()),
		VLeadK: float64(rs.VLeadK()),
		ALeadK: float64(rs.ALeadK()),
		Status: rs.Status(),
	}
}

func MapData(md custom.MapData) *pcc.MapData {
	return &pcc.MapData{
		Curvature:      float64(md.Curvature()),
		DistToTurn:     float64(md.DistToTurn()),
		CurvatureValid: md.CurvatureValid(),
	}
}

// FillState copies a cycle output into a pccState message. Only the last
// alert of the cycle is kept.
func FillState(state custom.PccState, out pcc.Output) error {
	state.SetPedal(float32(out.Pedal.Value))
	state.SetPedalIndex(uint16(out.Pedal.Index))
	state.SetPedalEnabled(out.Pedal.Enable)
	state.SetTargetSpeedKph(float32(out.TargetSpeedKph))
	state.SetAccelMin(float32(out.Envelope.AccelMin))
	state.SetAccelMax(float32(out.Envelope.AccelMax))
	state.SetJerkMin(float32(out.Envelope.JerkMin))
	state.SetJerkMax(float32(out.Envelope.JerkMax))
	state.SetBrakeFloor(float32(out.Envelope.BrakeFloor))
	state.SetStatus(uint16(out.Status))
	state.SetEnabled(out.Enabled)
	state.SetAvailable(out.Available)
	state.SetRule(uint16(out.Rule))
	if len(out.Alerts) > 0 {
		return state.SetAlert(out.Alerts[len(out.Alerts)-1])
	}
	return nil
}
