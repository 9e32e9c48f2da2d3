package handle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stormworks-utils/sw-mc-builder/builder"
	"github.com/stormworks-utils/sw-mc-builder/core"
	"github.com/stormworks-utils/sw-mc-builder/emit"
	"github.com/stormworks-utils/sw-mc-builder/handle"
)

type HandleSuite struct {
	suite.Suite
}

func TestHandleSuite(t *testing.T) {
	suite.Run(t, new(HandleSuite))
}

// fakeLayouter/fakeEmitter stand in for the real GridLayouter/DefaultEmitter
// so Run's selection/resolve/optimize orchestration can be exercised without
// touching the filesystem.
type fakeLayouter struct{}

func (fakeLayouter) Layout(mc *core.Microcontroller) (map[*core.Primitive]core.GridPosition, error) {
	positions := make(map[*core.Primitive]core.GridPosition)
	for i, p := range mc.Resolved() {
		positions[p] = core.GridPosition{X: i, Y: 0}
	}
	return positions, nil
}

type fakeEmitter struct{}

func (fakeEmitter) Emit(mc *core.Microcontroller, _ map[*core.Primitive]core.GridPosition) (emit.Document, error) {
	return emit.Document{Name: mc.Name, Metadata: map[string]string{}}, nil
}

func addMC(t *testing.T, name string) *core.Microcontroller {
	mc := core.NewMicrocontroller(name)
	a, err := mc.PlaceInput("a", core.Number, core.GridPosition{X: 0, Y: 0})
	require.NoError(t, err)
	b, err := mc.PlaceInput("b", core.Number, core.GridPosition{X: 0, Y: 1})
	require.NoError(t, err)
	sum, err := builder.Add(a, b)
	require.NoError(t, err)
	require.NoError(t, mc.PlaceOutput("sum", sum, core.GridPosition{X: 1, Y: 0}))
	return mc
}

func (s *HandleSuite) TestRunCompilesEverySelectedMicrocontroller() {
	mcs := []*core.Microcontroller{addMC(s.T(), "Autopilot"), addMC(s.T(), "CruiseControl")}
	compiled, err := handle.Run(mcs, handle.Options{}, fakeEmitter{}, fakeLayouter{})
	require.NoError(s.T(), err)
	s.Len(compiled, 2)
}

func (s *HandleSuite) TestRunSelectFiltersByNameSubstring() {
	mcs := []*core.Microcontroller{addMC(s.T(), "Autopilot"), addMC(s.T(), "CruiseControl")}
	compiled, err := handle.Run(mcs, handle.Options{Select: []string{"Auto"}}, fakeEmitter{}, fakeLayouter{})
	require.NoError(s.T(), err)
	s.Len(compiled, 1)
	s.Equal("Autopilot", compiled[0].Name)
}

func (s *HandleSuite) TestRunRejectsDuplicateNames() {
	mcs := []*core.Microcontroller{addMC(s.T(), "Autopilot"), addMC(s.T(), "Autopilot")}
	_, err := handle.Run(mcs, handle.Options{}, fakeEmitter{}, fakeLayouter{})
	s.True(errors.Is(err, handle.ErrDuplicateName))
}

func (s *HandleSuite) TestRunStampsBuilderIdentifier() {
	mcs := []*core.Microcontroller{addMC(s.T(), "Autopilot")}
	compiled, err := handle.Run(mcs, handle.Options{}, fakeEmitter{}, fakeLayouter{})
	require.NoError(s.T(), err)
	s.Equal(handle.BuilderIdentifier, compiled[0].Doc.Metadata["builder_identifier"])
}

func (s *HandleSuite) TestRunSelectMatchingNothingReturnsEmptyNotError() {
	mcs := []*core.Microcontroller{addMC(s.T(), "Autopilot")}
	compiled, err := handle.Run(mcs, handle.Options{Select: []string{"Nonexistent"}}, fakeEmitter{}, fakeLayouter{})
	require.NoError(s.T(), err)
	s.Empty(compiled)
}
