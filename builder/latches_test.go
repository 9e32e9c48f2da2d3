package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stormworks-utils/sw-mc-builder/builder"
	"github.com/stormworks-utils/sw-mc-builder/core"
)

type LatchesSuite struct {
	suite.Suite
}

func TestLatchesSuite(t *testing.T) {
	suite.Run(t, new(LatchesSuite))
}

func (s *LatchesSuite) TestJKFlipFlopReturnsComplementaryOutputsOnSameProducer() {
	q, notQ, err := builder.JKFlipFlop(booleanWire(), booleanWire(), booleanWire())
	require.NoError(s.T(), err)
	s.Same(q.Producer, notQ.Producer)
	s.Equal(0, q.NodeIndex)
	s.Equal(1, notQ.NodeIndex)
}

func (s *LatchesSuite) TestSRLatchWiresSetReset() {
	set, reset := booleanWire(), booleanWire()
	q, _, err := builder.SRLatch(set, reset)
	require.NoError(s.T(), err)
	p := q.Producer.(*core.Primitive)
	s.Same(set, p.Inputs["set"])
	s.Same(reset, p.Inputs["reset"])
}

func (s *LatchesSuite) TestMovingAverageClosesCycleThroughPlaceholder() {
	x := numberWire()
	avg, err := builder.MovingAverage(x, 4)
	require.NoError(s.T(), err)
	newAvgPrimitive := avg.Producer.(*core.Primitive)
	// x is wired directly to the former Placeholder wire; after
	// ReplaceProducer that same wire's Producer must now be the Add
	// primitive itself, never a dangling Placeholder.
	prevWire := newAvgPrimitive.Inputs["x"]
	s.Same(avg.Producer, prevWire.Producer)
}

func (s *LatchesSuite) TestMovingAverageRejectsNonPositiveWindow() {
	_, err := builder.MovingAverage(numberWire(), 0)
	require.Error(s.T(), err)
}

func (s *LatchesSuite) TestUpDownCounterStoresProperties() {
	up, down, reset := booleanWire(), booleanWire(), booleanWire()
	w, err := builder.UpDownCounter(up, down, reset, -10, 10, 1, 0)
	require.NoError(s.T(), err)
	p := w.Producer.(*core.Primitive)
	s.Equal(-10.0, p.Properties["min"])
	s.Equal(10.0, p.Properties["max"])
	s.Equal(1.0, p.Properties["increment"])
	s.Equal(0.0, p.Properties["reset_value"])
}
