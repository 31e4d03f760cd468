// internal/catalog/sensor_type.go
package catalog

import (
	"encoding/json"
	"fmt"
)

// SensorType is the value kind of a sensor.
type SensorType uint8

const (
	SensorTypeBool SensorType = iota + 1
	SensorTypeNumeric
	SensorTypeString
)

var sensorTypeNames = map[SensorType]string{
	SensorTypeBool:    "Bool",
	SensorTypeNumeric: "Numeric",
	SensorTypeString:  "String",
}

func (t SensorType) String() string {
	if name, ok := sensorTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SensorType(%d)", uint8(t))
}

// ParseSensorType maps the wire name to a SensorType.
func ParseSensorType(s string) (SensorType, error) {
	for t, name := range sensorTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("catalog: unknown sensor type %q", s)
}

func (t SensorType) MarshalJSON() ([]byte, error) {
	name, ok := sensorTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("catalog: cannot encode %s", t)
	}
	return json.Marshal(name)
}

func (t *SensorType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("catalog: sensor type must be a string: %w", err)
	}
	parsed, err := ParseSensorType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
