// internal/normalize/normalize.go
package normalize

import (
	"slices"
	"strings"

	"github.com/tamzrod/catalog-check/internal/catalog"
)

// Normalization produces the canonical, diff-stable form of a catalog.
// It never mutates its input and never validates.
// Sensor tags are sorted but NOT deduplicated.

// Sensors returns trimmed copies of sensors sorted by id.
func Sensors(in []catalog.Sensor) []catalog.Sensor {
	out := make([]catalog.Sensor, 0, len(in))
	for _, s := range in {
		n := catalog.Sensor{
			ID:          strings.TrimSpace(s.ID),
			DisplayName: strings.TrimSpace(s.DisplayName),
			MarkerTags:  tagList(s.MarkerTags),
			Type:        s.Type,
		}
		if s.Unit != nil {
			unit := strings.TrimSpace(*s.Unit)
			n.Unit = &unit
		}
		out = append(out, n)
	}

	slices.SortStableFunc(out, func(a, b catalog.Sensor) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Assets returns trimmed copies of assets sorted by id,
// with both sensor reference lists sorted by sensor id.
func Assets(in []catalog.Asset) []catalog.Asset {
	out := make([]catalog.Asset, 0, len(in))
	for _, a := range in {
		n := catalog.Asset{
			ID:               strings.TrimSpace(a.ID),
			DisplayName:      strings.TrimSpace(a.DisplayName),
			MarkerTags:       tagList(a.MarkerTags),
			MandatorySensors: sensorInfos(a.MandatorySensors),
			OptionalSensors:  sensorInfos(a.OptionalSensors),
		}
		if a.IsPlant != nil {
			v := *a.IsPlant
			n.IsPlant = &v
		}
		if a.AssetTypeID != nil {
			v := *a.AssetTypeID
			n.AssetTypeID = &v
		}
		out = append(out, n)
	}

	slices.SortStableFunc(out, func(a, b catalog.Asset) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

func sensorInfos(in []catalog.SensorInfo) []catalog.SensorInfo {
	out := make([]catalog.SensorInfo, 0, len(in))
	for _, si := range in {
		out = append(out, catalog.SensorInfo{
			SensorID:        strings.TrimSpace(si.SensorID),
			ExtraMarkerTags: tagList(si.ExtraMarkerTags),
		})
	}

	slices.SortStableFunc(out, func(a, b catalog.SensorInfo) int {
		return strings.Compare(a.SensorID, b.SensorID)
	})
	return out
}

// tagList trims each tag and sorts bytewise. Never returns nil.
func tagList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		out = append(out, strings.TrimSpace(t))
	}
	slices.Sort(out)
	return out
}
