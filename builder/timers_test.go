package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stormworks-utils/sw-mc-builder/builder"
	"github.com/stormworks-utils/sw-mc-builder/core"
)

type TimersSuite struct {
	suite.Suite
}

func TestTimersSuite(t *testing.T) {
	suite.Run(t, new(TimersSuite))
}

func (s *TimersSuite) TestPulseStoresMode() {
	w, err := builder.Pulse(booleanWire(), builder.PulseFalling)
	require.NoError(s.T(), err)
	p := w.Producer.(*core.Primitive)
	s.Equal(builder.PulseFalling, p.Properties["mode"])
}

func (s *TimersSuite) TestTimerTONStoresDurationAndUnit() {
	w, err := builder.TimerTON(booleanWire(), 2.5, builder.TimerMinutes)
	require.NoError(s.T(), err)
	p := w.Producer.(*core.Primitive)
	s.Equal(2.5, p.Properties["duration"])
	s.Equal(builder.TimerMinutes, p.Properties["unit"])
}

func (s *TimersSuite) TestNumericalJunctionReturnsTwoCopiesOfSameProducer() {
	a, b, err := builder.NumericalJunction(numberWire())
	require.NoError(s.T(), err)
	s.Same(a.Producer, b.Producer)
	s.Equal(0, a.NodeIndex)
	s.Equal(1, b.NodeIndex)
}
