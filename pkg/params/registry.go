package params

import "github.com/mesh-intelligence/knobs/pkg/types"

// Parameter identifiers. The ordinal values index the handler table, so the
// order here is part of the compiled contract: adding, removing, or
// reordering entries changes the table and anything that records parameters
// by ordinal. Register every new ID in NewRegistry in the same order.
const (
	ParamTemperatureSetpoint types.ID = iota
	ParamHighTemperatureAlarm
	ParamSupplyVoltage
	ParamFanDutyCycle
	ParamHeartbeatInterval

	paramCount
)

// Count returns the number of built-in parameters.
func Count() int { return int(paramCount) }

// NewRegistry builds the handler table for the built-in parameter catalog.
// Build verifies the ID/table correspondence (dense ordinals, unique keys,
// valid defaults, consistent sizes), so a drifted registration fails here
// at startup instead of corrupting dispatch later.
func NewRegistry() (*types.Registry, error) {
	b := types.NewBuilder()

	if err := types.Register(b, ParamTemperatureSetpoint, temperatureSetpointCodec{}); err != nil {
		return nil, err
	}
	if err := types.Register(b, ParamHighTemperatureAlarm, highTemperatureAlarmCodec{}); err != nil {
		return nil, err
	}
	if err := types.Register(b, ParamSupplyVoltage, supplyVoltageCodec{}); err != nil {
		return nil, err
	}
	if err := types.Register(b, ParamFanDutyCycle, fanDutyCycleCodec{}); err != nil {
		return nil, err
	}
	if err := types.Register(b, ParamHeartbeatInterval, heartbeatIntervalCodec{}); err != nil {
		return nil, err
	}

	return b.Build()
}
