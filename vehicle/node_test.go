package vehicle_test

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stormworks-utils/sw-mc-builder/vehicle"
)

type NodeSuite struct {
	suite.Suite
}

func TestNodeSuite(t *testing.T) {
	suite.Run(t, new(NodeSuite))
}

const sampleVehicleXML = `<vehicle>
  <microprocessor_definition name="Autopilot">
    <PropertyNumber name="Gain" value="1"/>
    <components/>
  </microprocessor_definition>
  <microprocessor_definition name="CruiseControl">
    <PropertyNumber name="Speed" value="50"/>
  </microprocessor_definition>
</vehicle>`

func (s *NodeSuite) parsed() vehicle.Node {
	var root vehicle.Node
	require.NoError(s.T(), xml.Unmarshal([]byte(sampleVehicleXML), &root))
	return root
}

func (s *NodeSuite) TestFindLocatesAllMatchingDescendants() {
	root := s.parsed()
	defs := root.Find("microprocessor_definition")
	s.Len(defs, 2)
}

func (s *NodeSuite) TestFindChildrenIsNotRecursive() {
	root := s.parsed()
	s.Empty(root.FindChildren("PropertyNumber"))
	defs := root.Find("microprocessor_definition")
	s.Len(defs[0].FindChildren("PropertyNumber"), 1)
}

func (s *NodeSuite) TestAttrReturnsFalseWhenMissing() {
	root := s.parsed()
	_, ok := root.Attr("name")
	s.False(ok)
}

func (s *NodeSuite) TestSetAttrOverwritesExisting() {
	root := s.parsed()
	def := root.Find("microprocessor_definition")[0]
	prop := def.FindChildren("PropertyNumber")[0]
	prop.SetAttr("value", "5")
	v, ok := prop.Attr("value")
	s.True(ok)
	s.Equal("5", v)
}

func (s *NodeSuite) TestSetAttrAppendsWhenAbsent() {
	def := &vehicle.Node{}
	def.SetAttr("name", "New")
	v, ok := def.Attr("name")
	s.True(ok)
	s.Equal("New", v)
}
