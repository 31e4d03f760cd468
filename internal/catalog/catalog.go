// internal/catalog/catalog.go
package catalog

// ---- SENSOR ----

// Sensor is one point definition.
// Unit is meaningful only for Numeric sensors.
type Sensor struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	MarkerTags  []string   `json:"markerTags"`
	Type        SensorType `json:"type"`
	Unit        *string    `json:"unit,omitempty"`
}

// ---- ASSET ----

// Asset is one equipment definition referencing sensors.
type Asset struct {
	ID               string       `json:"id"`
	IsPlant          *bool        `json:"isPlant,omitempty"`
	DisplayName      string       `json:"displayName"`
	MarkerTags       []string     `json:"markerTags"`
	MandatorySensors []SensorInfo `json:"mandatorySensors"`
	OptionalSensors  []SensorInfo `json:"optionalSensors"`
	AssetTypeID      *uint32      `json:"assetTypeId,omitempty"`
}

// SensorInfo links an asset to a sensor.
// ExtraMarkerTags must be disjoint from the sensor's own tags.
type SensorInfo struct {
	SensorID        string   `json:"sensorId"`
	ExtraMarkerTags []string `json:"extraMarkerTags"`
}

// DeveloperTag exempts an asset from the mandatory sensor rule.
const DeveloperTag = "developer"

// HasTag reports whether the asset carries tag.
func (a Asset) HasTag(tag string) bool {
	for _, t := range a.MarkerTags {
		if t == tag {
			return true
		}
	}
	return false
}

// SensorRefs returns mandatory then optional sensor references.
func (a Asset) SensorRefs() []SensorInfo {
	refs := make([]SensorInfo, 0, len(a.MandatorySensors)+len(a.OptionalSensors))
	refs = append(refs, a.MandatorySensors...)
	refs = append(refs, a.OptionalSensors...)
	return refs
}

// SensorIndex maps sensor id to sensor.
// Built once per run; later duplicates overwrite earlier ones.
type SensorIndex map[string]Sensor

// IndexSensors builds a SensorIndex.
func IndexSensors(sensors []Sensor) SensorIndex {
	idx := make(SensorIndex, len(sensors))
	for _, s := range sensors {
		idx[s.ID] = s
	}
	return idx
}
