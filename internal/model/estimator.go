package model

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is returned when an estimation is attempted on a spec
// that is not physically meaningful. Full range validation lives in
// JobSpec.Validate; this is only the guard that keeps Estimate safe to
// call on its own.
var ErrInvalidSpec = errors.New("invalid job specification")

// Conversion and process constants for the bag lines.
const (
	inchToMM = 25.4

	// allowanceIn is the fixed seal/fold allowance added to both the
	// repeat height and the web width, in inches.
	allowanceIn = 1.0

	// wasteFraction is the share of raw paper assumed lost in
	// production.
	wasteFraction = 0.06

	sideGlueFactor   = 0.010 // kg glue per kg bag, side seam
	bottomGlueFactor = 0.025 // kg glue per kg bag, bottom seam
	inkFactor        = 0.010 // kg ink per kg bag
)

// EstimationResult holds the machine setup and material quantities
// derived for one job. Values are unrounded; formatting to two
// decimals is the document writer's concern.
type EstimationResult struct {
	ActualHeightMM   float64 `json:"actual_height_mm"`   // Repeat height incl. allowance (mm)
	ActualWidthMM    float64 `json:"actual_width_mm"`    // Web width incl. allowance (mm)
	CylinderMM       float64 `json:"cylinder_mm"`        // Chosen cylinder circumference (mm)
	PaperRollMM      float64 `json:"paper_roll_mm"`      // Chosen paper-roll width (mm)
	WeightPerBagKG   float64 `json:"weight_per_bag_kg"`  // Paper weight of one bag
	FinishedWeightKG float64 `json:"finished_weight_kg"` // Paper weight of the full order
	TotalWeightKG    float64 `json:"total_weight_kg"`    // Order weight incl. waste
	SideGlueKG       float64 `json:"side_glue_kg"`
	BottomGlueKG     float64 `json:"bottom_glue_kg"`
	InkKG            float64 `json:"ink_kg"`
}

// Estimate computes the machine setup and material quantities for a
// job. It is a pure function of the spec and the catalog: identical
// inputs always produce identical results.
func Estimate(spec JobSpec, catalog EquipmentCatalog) (EstimationResult, error) {
	if spec.Quantity <= 0 {
		return EstimationResult{}, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidSpec, spec.Quantity)
	}
	if spec.GSM <= 0 {
		return EstimationResult{}, fmt.Errorf("%w: grammage must be positive, got %g", ErrInvalidSpec, spec.GSM)
	}

	// One print repeat covers height plus half the bottom gusset; the
	// web covers front and back panels plus the gusset on both sides.
	actHeightMM := (spec.HeightIn + spec.BottomIn/2 + allowanceIn) * inchToMM
	actWidthMM := (2*(spec.WidthIn+spec.BottomIn) + allowanceIn) * inchToMM

	cylinder, err := catalog.NearestCylinder(actHeightMM)
	if err != nil {
		return EstimationResult{}, err
	}
	roll, err := catalog.RollForWidth(actWidthMM)
	if err != nil {
		return EstimationResult{}, err
	}

	// Repeat area (mm2) times 1e-6 gives m2; times grammage gives the
	// paper weight of one bag.
	wpb := cylinder * roll * 1e-6 * spec.GSM
	qty := float64(spec.Quantity)
	finished := wpb * qty / 1000

	return EstimationResult{
		ActualHeightMM:   actHeightMM,
		ActualWidthMM:    actWidthMM,
		CylinderMM:       cylinder,
		PaperRollMM:      roll,
		WeightPerBagKG:   wpb,
		FinishedWeightKG: finished,
		TotalWeightKG:    finished / (1 - wasteFraction),
		SideGlueKG:       sideGlueFactor * wpb * qty / 1000,
		BottomGlueKG:     bottomGlueFactor * wpb * qty / 1000,
		InkKG:            inkFactor * wpb * qty / 1000,
	}, nil
}
