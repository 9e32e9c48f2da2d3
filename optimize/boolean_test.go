package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stormworks-utils/sw-mc-builder/builder"
	"github.com/stormworks-utils/sw-mc-builder/core"
	"github.com/stormworks-utils/sw-mc-builder/optimize"
)

type BooleanLoweringSuite struct {
	suite.Suite
}

func TestBooleanLoweringSuite(t *testing.T) {
	suite.Run(t, new(BooleanLoweringSuite))
}

func (s *BooleanLoweringSuite) TestLowerAndOrXor() {
	a := core.NewWire(core.Boolean, core.NewInputMarker("a", core.Boolean))
	b := core.NewWire(core.Boolean, core.NewInputMarker("b", core.Boolean))

	and, err := builder.And(a, b)
	require.NoError(s.T(), err)
	expr, deps, _, ok := optimize.LowerBoolean(and, 0)
	s.True(ok)
	s.Equal("x*y", expr)
	s.Len(deps, 2)

	or, err := builder.Or(a, b)
	require.NoError(s.T(), err)
	expr, _, _, ok = optimize.LowerBoolean(or, 0)
	s.True(ok)
	s.Equal("min(1,x+y)", expr)

	xor, err := builder.Xor(a, b)
	require.NoError(s.T(), err)
	expr, _, _, ok = optimize.LowerBoolean(xor, 0)
	s.True(ok)
	s.Equal("abs(x-y)", expr)
}

func (s *BooleanLoweringSuite) TestLowerNot() {
	a := core.NewWire(core.Boolean, core.NewInputMarker("a", core.Boolean))
	not, err := builder.Not(a)
	require.NoError(s.T(), err)
	expr, deps, _, ok := optimize.LowerBoolean(not, 0)
	s.True(ok)
	s.Equal("1-x", expr)
	s.Len(deps, 1)
}

// TestEqualEpsilonZeroPreservesLatentDefect locks in the documented defect:
// sign(a-b)+sign(b-a) always cancels to 0, so an epsilon-0 Equal lowers to
// a constant-0 expression and never reports true, even when a==b.
func (s *BooleanLoweringSuite) TestEqualEpsilonZeroPreservesLatentDefect() {
	a := core.NewWire(core.Number, core.NewInputMarker("a", core.Number))
	b := core.NewWire(core.Number, core.NewInputMarker("b", core.Number))
	eq, err := builder.Equal(a, b, 0)
	require.NoError(s.T(), err)

	expr, _, _, ok := optimize.LowerBoolean(eq, 0)
	s.True(ok)
	s.Equal("((sign(x-y)+sign(y-x))/2)", expr)
}

// TestEqualEpsilonNonZeroUsesMagnitudeTolerance checks the epsilon != 0
// path compares |a-b| against epsilon, not the signed difference against
// epsilon.
func (s *BooleanLoweringSuite) TestEqualEpsilonNonZeroUsesMagnitudeTolerance() {
	a := core.NewWire(core.Number, core.NewInputMarker("a", core.Number))
	b := core.NewWire(core.Number, core.NewInputMarker("b", core.Number))
	eq, err := builder.Equal(a, b, 0.1)
	require.NoError(s.T(), err)

	expr, _, _, ok := optimize.LowerBoolean(eq, 0)
	s.True(ok)
	s.Equal("((1-sign(abs(x-y)-0.1))/2)", expr)
}

func (s *BooleanLoweringSuite) TestLowerConstantOn() {
	on := builder.ConstantOn()
	expr, deps, _, ok := optimize.LowerBoolean(on, 0)
	s.True(ok)
	s.Equal("1", expr)
	s.Empty(deps)
}

// TestBudgetExhaustedFails exercises a boolean tree wide enough to exceed
// the 8-leaf budget.
func (s *BooleanLoweringSuite) TestBudgetExhaustedFails() {
	leaves := make([]*core.Wire, 9)
	for i := range leaves {
		leaves[i] = core.NewWire(core.Boolean, core.NewInputMarker(optName(i), core.Boolean))
	}
	acc := leaves[0]
	var err error
	for i := 1; i < len(leaves); i++ {
		acc, err = builder.Xor(acc, leaves[i])
		require.NoError(s.T(), err)
	}
	_, _, _, ok := optimize.LowerBoolean(acc, 0)
	s.False(ok)
}
