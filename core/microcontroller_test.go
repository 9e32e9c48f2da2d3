package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stormworks-utils/sw-mc-builder/core"
)

type MicrocontrollerSuite struct {
	suite.Suite
}

func TestMicrocontrollerSuite(t *testing.T) {
	suite.Run(t, new(MicrocontrollerSuite))
}

func (s *MicrocontrollerSuite) TestPlaceInputAndOutput() {
	mc := core.NewMicrocontroller("MC")
	w, err := mc.PlaceInput("Input 1", core.Number, core.GridPosition{X: 0, Y: 0})
	require.NoError(s.T(), err)
	require.Len(s.T(), mc.PlacedInputs, 1)

	err = mc.PlaceOutput("Out", w, core.GridPosition{X: 1, Y: 0})
	require.NoError(s.T(), err)
	require.Len(s.T(), mc.PlacedOutputs, 1)
}

func (s *MicrocontrollerSuite) TestDuplicateInputNameRejected() {
	mc := core.NewMicrocontroller("MC")
	_, err := mc.PlaceInput("Input 1", core.Number, core.GridPosition{X: 0, Y: 0})
	require.NoError(s.T(), err)
	_, err = mc.PlaceInput("Input 1", core.Number, core.GridPosition{X: 0, Y: 1})
	s.True(errors.Is(err, core.ErrDuplicateName))
}

func (s *MicrocontrollerSuite) TestPlacementCollisionRejected() {
	mc := core.NewMicrocontroller("MC")
	_, err := mc.PlaceInput("Input 1", core.Number, core.GridPosition{X: 2, Y: 2})
	require.NoError(s.T(), err)
	_, err = mc.PlaceInput("Input 2", core.Number, core.GridPosition{X: 2, Y: 2})
	s.True(errors.Is(err, core.ErrDuplicatePlacement))
}

func (s *MicrocontrollerSuite) TestNegativePlacementRejected() {
	mc := core.NewMicrocontroller("MC")
	_, err := mc.PlaceInput("Input 1", core.Number, core.GridPosition{X: -1, Y: 0})
	s.True(errors.Is(err, core.ErrOutOfBounds))
}

func (s *MicrocontrollerSuite) TestPlacementBeyondSurfaceAutoExpandsWithWarning() {
	mc := core.NewMicrocontroller("MC")
	_, err := mc.PlaceInput("Input 1", core.Number, core.GridPosition{X: 10, Y: 10})
	require.NoError(s.T(), err)
	s.Equal(11, mc.Width)
	s.Equal(11, mc.Height)
	s.NotEmpty(mc.Warnings())
}

func (s *MicrocontrollerSuite) TestStopOptimizationDisablesCompile() {
	mc := core.NewMicrocontroller("MC")
	s.True(mc.Optimize)
	mc.StopOptimization()
	s.False(mc.Optimize)
}

func (s *MicrocontrollerSuite) TestResolvedRoundTrip() {
	mc := core.NewMicrocontroller("MC")
	s.Nil(mc.Resolved())
	p := core.NewPrimitive(core.PrimitiveDescriptor{Kind: "ConstantNumber", OutputTypes: []core.SignalType{core.Number}})
	mc.SetResolved([]*core.Primitive{p})
	s.Equal([]*core.Primitive{p}, mc.Resolved())
}
