package model

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Catalog selection errors. Both mean the equipment on the floor
// cannot run the requested job; nothing is substituted silently.
var (
	ErrNoSuitableCylinder = errors.New("no suitable cylinder in catalog")
	ErrNoSuitableRoll     = errors.New("no suitable paper roll in catalog")
)

// EquipmentCatalog holds the machine sizes available to the shop:
// print-cylinder circumferences and paper-roll widths, both in mm.
// Build it once at startup with NewEquipmentCatalog and treat it as
// immutable afterwards.
type EquipmentCatalog struct {
	cylinders  []float64
	rollWidths []float64
}

// NewEquipmentCatalog copies and sorts the given sizes ascending.
func NewEquipmentCatalog(cylinders, rollWidths []float64) EquipmentCatalog {
	c := EquipmentCatalog{
		cylinders:  append([]float64(nil), cylinders...),
		rollWidths: append([]float64(nil), rollWidths...),
	}
	sort.Float64s(c.cylinders)
	sort.Float64s(c.rollWidths)
	return c
}

// Cylinders returns the sorted cylinder circumferences (mm).
func (c EquipmentCatalog) Cylinders() []float64 {
	return append([]float64(nil), c.cylinders...)
}

// RollWidths returns the sorted paper-roll widths (mm).
func (c EquipmentCatalog) RollWidths() []float64 {
	return append([]float64(nil), c.rollWidths...)
}

// NearestCylinder returns the cylinder circumference closest to the
// requested repeat height. Ties resolve to the smaller size.
func (c EquipmentCatalog) NearestCylinder(heightMM float64) (float64, error) {
	if len(c.cylinders) == 0 {
		return 0, ErrNoSuitableCylinder
	}
	best := c.cylinders[0]
	for _, cyl := range c.cylinders[1:] {
		if math.Abs(cyl-heightMM) < math.Abs(best-heightMM) {
			best = cyl
		}
	}
	return best, nil
}

// rollSlack is how far (mm) the web may run past the roll edge before
// the next roll width up must be used.
const rollSlack = 5.0

// RollForWidth returns the paper-roll width for the requested web
// width: the largest roll not wider than the web when it is within
// rollSlack, otherwise the next roll up. Web widths outside the
// catalog on either side are an error.
func (c EquipmentCatalog) RollForWidth(widthMM float64) (float64, error) {
	var smaller, bigger float64
	var haveSmaller, haveBigger bool
	for _, r := range c.rollWidths {
		if r <= widthMM {
			smaller, haveSmaller = r, true
		} else if !haveBigger {
			bigger, haveBigger = r, true
		}
	}
	if !haveSmaller || !haveBigger {
		return 0, fmt.Errorf("%w for web width %.2f mm", ErrNoSuitableRoll, widthMM)
	}
	if widthMM-smaller <= rollSlack {
		return smaller, nil
	}
	return bigger, nil
}
