package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stormworks-utils/sw-mc-builder/core"
)

type WireSuite struct {
	suite.Suite
}

func TestWireSuite(t *testing.T) {
	suite.Run(t, new(WireSuite))
}

func (s *WireSuite) TestUnconnectedWire() {
	w := core.NewWire(core.Number, core.Unconnected{})
	s.True(w.Unconnected())
	id, err := w.ComponentID()
	require.NoError(s.T(), err)
	s.Equal(-1, id)
}

func (s *WireSuite) TestComponentIDBeforeResolve() {
	p := core.NewPrimitive(core.PrimitiveDescriptor{Kind: "Add", InputPorts: []string{"x", "y"}, OutputTypes: []core.SignalType{core.Number}})
	w := core.NewWire(core.Number, p)
	_, err := w.ComponentID()
	s.True(errors.Is(err, core.ErrUnresolvedPlaceholder))

	p.ComponentID = 3
	id, err := w.ComponentID()
	require.NoError(s.T(), err)
	s.Equal(3, id)
}

func (s *WireSuite) TestComponentIDUnplacedInput() {
	marker := core.NewInputMarker("Input 1", core.Number)
	w := core.NewWire(core.Number, marker)
	_, err := w.ComponentID()
	s.True(errors.Is(err, core.ErrUnplacedInput))
}

func (s *WireSuite) TestComponentIDUnresolvedPlaceholder() {
	ph := core.NewPlaceholder(core.Number)
	w := core.NewWire(core.Number, ph)
	_, err := w.ComponentID()
	s.True(errors.Is(err, core.ErrUnresolvedPlaceholder))
}

func (s *WireSuite) TestReplaceProducerPatchesOnlyCalledWire() {
	ph := core.NewPlaceholder(core.Number)
	w1 := core.NewWire(core.Number, ph)
	w2 := core.NewWire(core.Number, ph)

	real := core.NewPrimitive(core.PrimitiveDescriptor{Kind: "ConstantNumber", OutputTypes: []core.SignalType{core.Number}})
	w1.ReplaceProducer(real)
	s.Same(real, w1.Producer)
	// w2 still observes the placeholder: ReplaceProducer only patches the
	// wire it's called on. Cycle-closing code is expected to call it on
	// every wire that was handed out before the real producer existed.
	_, ok := w2.Producer.(*core.Placeholder)
	s.True(ok)
}

func (s *WireSuite) TestToInputLazilyConverts() {
	w := core.NewWire(core.Boolean, core.Unconnected{})
	marker, err := w.ToInput("Sensor")
	require.NoError(s.T(), err)
	s.Equal("Sensor", marker.Name)
	s.Equal(core.Boolean, marker.Type)

	again, err := w.ToInput("Sensor")
	require.NoError(s.T(), err)
	s.Same(marker, again)
}

func (s *WireSuite) TestToInputRejectsConcreteProducer() {
	p := core.NewPrimitive(core.PrimitiveDescriptor{Kind: "ConstantNumber", OutputTypes: []core.SignalType{core.Number}})
	w := core.NewWire(core.Number, p)
	_, err := w.ToInput("x")
	s.True(errors.Is(err, core.ErrTypeMismatch))
}

func (s *WireSuite) TestStopOptimizationPropagatesToPrimitive() {
	p := core.NewPrimitive(core.PrimitiveDescriptor{Kind: "Add", InputPorts: []string{"x", "y"}, OutputTypes: []core.SignalType{core.Number}})
	w := core.NewWire(core.Number, p)
	w.StopOptimization()
	s.True(w.OptimizationStopped())
	s.False(p.Optimize)
}
