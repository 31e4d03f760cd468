// internal/refdata/refdata.go
package refdata

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Reference tables bundled with the binary.
// These values are trusted static input and MUST NOT be runtime-configurable.

//go:embed units.txt
var unitsText string

//go:embed asset_type_ids.txt
var assetTypeIDsText string

// ErrAssetTypeSyntax is returned when an asset type table line is not an unsigned integer.
var ErrAssetTypeSyntax = errors.New("refdata: invalid asset type id")

// ---- UNITS ----

// UnitSet is the flat set of valid unit symbols.
type UnitSet map[string]struct{}

// Contains reports whether unit is a known symbol.
func (s UnitSet) Contains(unit string) bool {
	_, ok := s[unit]
	return ok
}

// NewUnitSet builds a UnitSet from explicit symbols.
func NewUnitSet(units ...string) UnitSet {
	s := make(UnitSet, len(units))
	for _, u := range units {
		s[u] = struct{}{}
	}
	return s
}

// ParseUnits parses a units table.
// Blank lines and lines starting with "--" are ignored.
// Every other line is a comma-separated group of interchangeable symbols.
func ParseUnits(text string) UnitSet {
	s := make(UnitSet)
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		for _, sym := range strings.Split(line, ",") {
			if sym = strings.TrimSpace(sym); sym != "" {
				s[sym] = struct{}{}
			}
		}
	}
	return s
}

// Units returns the embedded unit catalog.
func Units() UnitSet {
	return ParseUnits(unitsText)
}

// ---- ASSET TYPES ----

// AssetTypeSet is the set of valid asset type ids.
type AssetTypeSet map[uint32]struct{}

// Contains reports whether id is a known asset type.
func (s AssetTypeSet) Contains(id uint32) bool {
	_, ok := s[id]
	return ok
}

// NewAssetTypeSet builds an AssetTypeSet from explicit ids.
func NewAssetTypeSet(ids ...uint32) AssetTypeSet {
	s := make(AssetTypeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// ParseAssetTypes parses one unsigned integer per line.
// Blank lines are skipped; repeated ids collapse into one entry.
// Any other malformed line fails the whole table.
func ParseAssetTypes(text string) (AssetTypeSet, error) {
	s := make(AssetTypeSet)
	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		id, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrAssetTypeSyntax, lineNo, line, err)
		}
		s[uint32(id)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("refdata: scan asset types: %w", err)
	}
	return s, nil
}

// AssetTypes returns the embedded asset type catalog.
func AssetTypes() (AssetTypeSet, error) {
	return ParseAssetTypes(assetTypeIDsText)
}
