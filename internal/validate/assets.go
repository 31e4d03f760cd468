// internal/validate/assets.go
package validate

import (
	"slices"

	"github.com/tamzrod/catalog-check/internal/catalog"
	"github.com/tamzrod/catalog-check/internal/refdata"
	"github.com/tamzrod/catalog-check/internal/tags"
)

// Assets checks a normalized asset list against the sensor catalog.
// It MUST be called only when Sensors reported nothing:
// cross-references into a broken sensor catalog are meaningless.
// Every rule runs for every asset; nothing short-circuits.
func Assets(assets []catalog.Asset, sensors catalog.SensorIndex, assetTypes refdata.AssetTypeSet) []Finding {
	fs := &findings{kind: KindAsset}

	for _, a := range assets {
		id := a.ID

		if a.ID == "" {
			fs.add(id, "Empty id")
		}
		if len(a.MarkerTags) == 0 {
			fs.add(id, "No SkySpark marker tags")
		}
		for _, tag := range a.MarkerTags {
			if !tags.IsTagName(tag) {
				fs.add(id, "Invalid SkySpark marker tag '%s'", tag)
			}
		}
		if a.DisplayName == "" {
			fs.add(id, "Empty display name")
		}
		if len(a.MandatorySensors) == 0 && !a.HasTag(catalog.DeveloperTag) {
			fs.add(id, "No mandatory sensors")
		}

		// ---- sensor references ----
		refs := a.SensorRefs()
		for _, ref := range refs {
			checkSensorRef(fs, id, ref, sensors)
		}

		refIDs := make([]string, 0, len(refs))
		for _, ref := range refs {
			refIDs = append(refIDs, ref.SensorID)
		}
		if HasDuplicates(refIDs) {
			fs.add(id, "Duplicate sensor ids")
		}

		// ---- asset type ----
		if a.AssetTypeID != nil && !assetTypes.Contains(*a.AssetTypeID) {
			fs.add(id, "Invalid asset type id %d", *a.AssetTypeID)
		}
	}

	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		ids = append(ids, a.ID)
	}
	if HasDuplicates(ids) {
		fs.add(AnyID, "Asset ids are not unique")
	}

	return fs.result()
}

// checkSensorRef validates one SensorInfo in the context of its asset.
// The sensor's own tags are re-checked here together with the extra tags.
func checkSensorRef(fs *findings, assetID string, ref catalog.SensorInfo, sensors catalog.SensorIndex) {
	if ref.SensorID == "" {
		fs.add(assetID, "Empty sensor id")
		return
	}

	sensor, ok := sensors[ref.SensorID]
	if !ok {
		fs.add(assetID, "No matching sensor with id '%s'", ref.SensorID)
		return
	}

	union := tagUnion(sensor.MarkerTags, ref.ExtraMarkerTags)
	if len(union) < len(sensor.MarkerTags)+len(ref.ExtraMarkerTags) {
		fs.add(assetID, "Duplicate tags for sensor '%s'", ref.SensorID)
	}
	for _, tag := range union {
		if !tags.IsTagName(tag) {
			fs.add(assetID, "Invalid SkySpark marker tag '%s' for sensor '%s'", tag, ref.SensorID)
		}
	}
}

// tagUnion returns the sorted distinct union of a and b.
func tagUnion(a, b []string) []string {
	union := make([]string, 0, len(a)+len(b))
	union = append(union, a...)
	union = append(union, b...)
	slices.Sort(union)
	return slices.Compact(union)
}
