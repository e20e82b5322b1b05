package params

import "github.com/mesh-intelligence/knobs/pkg/types"

// TemperatureSetpoint is the target temperature for the control loop.
type TemperatureSetpoint struct {
	Celsius float32
}

// temperatureSetpointCodec accepts setpoints in [-50, 150] degrees Celsius.
type temperatureSetpointCodec struct{}

func (temperatureSetpointCodec) Meta() types.Meta {
	return types.Meta{
		Name:    "Temperature Setpoint",
		Key:     "temperature_setpoint",
		Storage: types.StorageVolatile,
	}
}

func (temperatureSetpointCodec) Default() TemperatureSetpoint {
	return TemperatureSetpoint{Celsius: 23.0}
}

func (temperatureSetpointCodec) Validate(v TemperatureSetpoint) bool {
	return v.Celsius >= -50.0 && v.Celsius <= 150.0
}

func (temperatureSetpointCodec) Parse(text string) (TemperatureSetpoint, error) {
	f, err := parseFloat32(text)
	if err != nil {
		return TemperatureSetpoint{}, err
	}
	return TemperatureSetpoint{Celsius: f}, nil
}

func (temperatureSetpointCodec) Format(v TemperatureSetpoint) string {
	return formatFloat2(v.Celsius)
}

// HighTemperatureAlarm is the threshold above which the device raises an
// over-temperature alarm.
type HighTemperatureAlarm struct {
	Threshold float32
}

// highTemperatureAlarmCodec accepts thresholds in [0, 150] degrees Celsius.
type highTemperatureAlarmCodec struct{}

func (highTemperatureAlarmCodec) Meta() types.Meta {
	return types.Meta{
		Name:    "High Temperature Alarm",
		Key:     "high_temperature_alarm",
		Storage: types.StorageVolatile,
	}
}

func (highTemperatureAlarmCodec) Default() HighTemperatureAlarm {
	return HighTemperatureAlarm{Threshold: 80.0}
}

func (highTemperatureAlarmCodec) Validate(v HighTemperatureAlarm) bool {
	return v.Threshold >= 0.0 && v.Threshold <= 150.0
}

func (highTemperatureAlarmCodec) Parse(text string) (HighTemperatureAlarm, error) {
	f, err := parseFloat32(text)
	if err != nil {
		return HighTemperatureAlarm{}, err
	}
	return HighTemperatureAlarm{Threshold: f}, nil
}

func (highTemperatureAlarmCodec) Format(v HighTemperatureAlarm) string {
	return formatFloat2(v.Threshold)
}
