package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEquipmentCatalogSortsInput(t *testing.T) {
	c := NewEquipmentCatalog([]float64{400, 200, 300}, []float64{310, 300})
	assert.Equal(t, []float64{200, 300, 400}, c.Cylinders())
	assert.Equal(t, []float64{300, 310}, c.RollWidths())
}

func TestNearestCylinder(t *testing.T) {
	c := NewEquipmentCatalog([]float64{100, 200, 300}, nil)

	got, err := c.NearestCylinder(190)
	require.NoError(t, err)
	assert.Equal(t, 200.0, got)

	got, err = c.NearestCylinder(120)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
}

func TestNearestCylinderTieBreaksToSmaller(t *testing.T) {
	c := NewEquipmentCatalog([]float64{100, 200}, nil)
	got, err := c.NearestCylinder(150)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
}

func TestNearestCylinderEmptyCatalog(t *testing.T) {
	c := NewEquipmentCatalog(nil, []float64{300})
	_, err := c.NearestCylinder(200)
	assert.ErrorIs(t, err, ErrNoSuitableCylinder)
}

func TestRollForWidthSlackBoundary(t *testing.T) {
	c := NewEquipmentCatalog(nil, []float64{300, 310, 400})

	// Exactly 5 mm over the smaller roll stays on it.
	got, err := c.RollForWidth(305)
	require.NoError(t, err)
	assert.Equal(t, 300.0, got)

	// 6 mm over moves up to the next roll.
	got, err = c.RollForWidth(306)
	require.NoError(t, err)
	assert.Equal(t, 310.0, got)
}

func TestRollForWidthExactMatch(t *testing.T) {
	c := NewEquipmentCatalog(nil, []float64{300, 310, 400})
	got, err := c.RollForWidth(310)
	require.NoError(t, err)
	assert.Equal(t, 310.0, got)
}

func TestRollForWidthOutsideCatalog(t *testing.T) {
	c := NewEquipmentCatalog(nil, []float64{300, 310, 400})

	_, err := c.RollForWidth(250) // narrower than every roll
	assert.ErrorIs(t, err, ErrNoSuitableRoll)

	_, err = c.RollForWidth(450) // wider than every roll
	assert.ErrorIs(t, err, ErrNoSuitableRoll)
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	c := NewEquipmentCatalog([]float64{200, 300}, []float64{500})
	cyls := c.Cylinders()
	cyls[0] = 999
	assert.Equal(t, []float64{200, 300}, c.Cylinders())
}
