package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stormworks-utils/sw-mc-builder/builder"
	"github.com/stormworks-utils/sw-mc-builder/core"
)

type PropertySuite struct {
	suite.Suite
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}

func (s *PropertySuite) TestPropertyNumberRegistersAsAdditionalComponent() {
	mc := core.NewMicrocontroller("MC")
	w, err := builder.PropertyNumber(mc, "Gain", 2.5)
	require.NoError(s.T(), err)
	s.Len(mc.AdditionalComponents, 1)
	s.Same(w.Producer, mc.AdditionalComponents[0])
}

func (s *PropertySuite) TestPropertySliderRejectsOutOfRangeDefault() {
	mc := core.NewMicrocontroller("MC")
	_, err := builder.PropertySlider(mc, "Speed", 0, 10, 1, 20)
	s.True(errors.Is(err, core.ErrOutOfBounds))
}

func (s *PropertySuite) TestPropertyDropdownRejectsInvalidDefaultIndex() {
	mc := core.NewMicrocontroller("MC")
	_, err := builder.PropertyDropdown(mc, "Mode", []string{"A", "B"}, 2)
	s.True(errors.Is(err, core.ErrOutOfBounds))
}

func (s *PropertySuite) TestForcePropertyMarksUnderlyingPrimitive() {
	mc := core.NewMicrocontroller("MC")
	w, err := builder.PropertyToggle(mc, "Enabled", true)
	require.NoError(s.T(), err)
	w.ForceProperty()
	p := w.Producer.(*core.Primitive)
	s.True(p.ForceProperty)
}

func (s *PropertySuite) TestAddTextPropertyHasNoOutputButIsRegistered() {
	mc := core.NewMicrocontroller("MC")
	builder.AddTextProperty(mc, "Label", "hello")
	s.Len(mc.AdditionalComponents, 1)
	s.Equal(builder.KindPropertyText, mc.AdditionalComponents[0].Descriptor.Kind)
}
