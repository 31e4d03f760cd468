// internal/validate/sensors.go
package validate

import (
	"github.com/tamzrod/catalog-check/internal/catalog"
	"github.com/tamzrod/catalog-check/internal/refdata"
	"github.com/tamzrod/catalog-check/internal/tags"
)

// Sensors checks a normalized sensor list.
// Every rule runs for every sensor; nothing short-circuits.
// It MUST NOT mutate its input.
func Sensors(sensors []catalog.Sensor, units refdata.UnitSet) []Finding {
	fs := &findings{kind: KindSensor}

	for _, s := range sensors {
		id := s.ID

		if s.ID == "" {
			fs.add(id, "Empty id")
		}
		if s.DisplayName == "" {
			fs.add(id, "Empty display name")
		}
		if len(s.MarkerTags) == 0 {
			fs.add(id, "No SkySpark marker tags")
		}
		for _, tag := range s.MarkerTags {
			if !tags.IsTagName(tag) {
				fs.add(id, "Invalid SkySpark marker tag '%s'", tag)
			}
		}

		// ---- unit ----
		// Numeric without a unit is uncommon but valid.
		if s.Type == catalog.SensorTypeNumeric {
			if s.Unit != nil && !units.Contains(*s.Unit) {
				fs.add(id, "Invalid unit '%s'", *s.Unit)
			}
		} else if s.Unit != nil {
			fs.add(id, "Has a unit but is not numeric")
		}
	}

	ids := make([]string, 0, len(sensors))
	for _, s := range sensors {
		ids = append(ids, s.ID)
	}
	if HasDuplicates(ids) {
		fs.add(AnyID, "Sensor ids are not unique")
	}

	return fs.result()
}
