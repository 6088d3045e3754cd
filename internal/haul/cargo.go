package haul

import (
	"fmt"
	"strings"
)

// CargoClass is the weight/size class of a load.
type CargoClass int

const (
	Standard CargoClass = iota
	Oversize
	Superload
)

// Classes lists every cargo class in draw order.
var Classes = []CargoClass{Standard, Oversize, Superload}

type classInfo struct {
	name             string
	weightMultiplier float64
	oversizeFactor   float64
	descriptions     []string
}

var classTable = map[CargoClass]classInfo{
	Standard: {
		name:             "Standard",
		weightMultiplier: 1.1,
		oversizeFactor:   0,
		descriptions:     []string{"Steel Coils", "Lumber", "Electronics", "Food Products", "Textiles"},
	},
	Oversize: {
		name:             "Oversize",
		weightMultiplier: 1.25,
		oversizeFactor:   0.20,
		descriptions:     []string{"Construction Equipment", "Industrial Machinery", "Prefab Buildings", "Large Tanks"},
	},
	Superload: {
		name:             "Superload",
		weightMultiplier: 1.5,
		oversizeFactor:   0.40,
		descriptions:     []string{"Wind Turbine Blades", "Bridge Sections", "Transformers", "Mining Equipment"},
	},
}

func (c CargoClass) String() string {
	if info, ok := classTable[c]; ok {
		return info.name
	}
	return fmt.Sprintf("CargoClass(%d)", int(c))
}

// WeightFactor is the payout surcharge for the class weight (multiplier - 1).
func (c CargoClass) WeightFactor() float64 {
	return classTable[c].weightMultiplier - 1
}

// OversizeFactor is the payout surcharge for permits and escorts.
func (c CargoClass) OversizeFactor() float64 {
	return classTable[c].oversizeFactor
}

// Descriptions returns the cargo names a contract of this class may carry.
func (c CargoClass) Descriptions() []string {
	return classTable[c].descriptions
}

// ParseCargoClass converts a class name back to a CargoClass, ignoring case.
func ParseCargoClass(s string) (CargoClass, error) {
	for _, c := range Classes {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("haul: unknown cargo class %q", s)
}
