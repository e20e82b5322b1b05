package params

import "github.com/mesh-intelligence/knobs/pkg/types"

// Per-parameter handle constructors. Each binds its parameter's value type
// to its ordinal against the given registry, so callers get compile-time
// typed Set/Get without spelling out the ID/type pair themselves.

func TemperatureSetpointHandle(r *types.Registry) (types.Handle[TemperatureSetpoint], error) {
	return types.BindHandle[TemperatureSetpoint](r, ParamTemperatureSetpoint)
}

func HighTemperatureAlarmHandle(r *types.Registry) (types.Handle[HighTemperatureAlarm], error) {
	return types.BindHandle[HighTemperatureAlarm](r, ParamHighTemperatureAlarm)
}

func SupplyVoltageHandle(r *types.Registry) (types.Handle[SupplyVoltage], error) {
	return types.BindHandle[SupplyVoltage](r, ParamSupplyVoltage)
}

func FanDutyCycleHandle(r *types.Registry) (types.Handle[FanDutyCycle], error) {
	return types.BindHandle[FanDutyCycle](r, ParamFanDutyCycle)
}

func HeartbeatIntervalHandle(r *types.Registry) (types.Handle[HeartbeatInterval], error) {
	return types.BindHandle[HeartbeatInterval](r, ParamHeartbeatInterval)
}
