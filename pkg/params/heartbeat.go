package params

import (
	"strconv"

	"github.com/mesh-intelligence/knobs/pkg/types"
)

// HeartbeatInterval is how often the device reports liveness.
type HeartbeatInterval struct {
	Seconds uint16
}

// heartbeatIntervalCodec accepts intervals in [1, 3600] seconds.
type heartbeatIntervalCodec struct{}

func (heartbeatIntervalCodec) Meta() types.Meta {
	return types.Meta{
		Name:    "Heartbeat Interval",
		Key:     "heartbeat_interval",
		Storage: types.StorageVolatile,
	}
}

func (heartbeatIntervalCodec) Default() HeartbeatInterval {
	return HeartbeatInterval{Seconds: 30}
}

func (heartbeatIntervalCodec) Validate(v HeartbeatInterval) bool {
	return v.Seconds >= 1 && v.Seconds <= 3600
}

func (heartbeatIntervalCodec) Parse(text string) (HeartbeatInterval, error) {
	n, err := parseUint(text, 16)
	if err != nil {
		return HeartbeatInterval{}, err
	}
	return HeartbeatInterval{Seconds: uint16(n)}, nil
}

func (heartbeatIntervalCodec) Format(v HeartbeatInterval) string {
	return strconv.FormatUint(uint64(v.Seconds), 10)
}
