package vehicle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stormworks-utils/sw-mc-builder/emit"
	"github.com/stormworks-utils/sw-mc-builder/vehicle"
)

type MergeSuite struct {
	suite.Suite
}

func TestMergeSuite(t *testing.T) {
	suite.Run(t, new(MergeSuite))
}

func (s *MergeSuite) writeFixture(content string) string {
	path := filepath.Join(s.T().TempDir(), "vehicle.xml")
	require.NoError(s.T(), os.WriteFile(path, []byte(content), 0o644))
	return path
}

func numberProperty(name string, value interface{}) emit.ComponentDoc {
	return emit.ComponentDoc{
		Kind:       "PropertyNumber",
		Properties: map[string]interface{}{"name": name, "value": value},
	}
}

func (s *MergeSuite) TestMergeWritesMatchingPropertyValue() {
	path := s.writeFixture(`<vehicle><microprocessor_definition name="Autopilot"><PropertyNumber name="Gain" value="1"/></microprocessor_definition></vehicle>`)

	doc := emit.Document{Name: "Autopilot", Components: []emit.ComponentDoc{numberProperty("Gain", 7.5)}}
	require.NoError(s.T(), vehicle.Merge(path, []emit.Document{doc}))

	out, err := os.ReadFile(path)
	require.NoError(s.T(), err)
	s.Contains(string(out), `value="7.5"`)
}

func (s *MergeSuite) TestMergeSkipsForcedProperty() {
	path := s.writeFixture(`<vehicle><microprocessor_definition name="Autopilot"><PropertyNumber name="Gain" value="1" force_property="true"/></microprocessor_definition></vehicle>`)

	doc := emit.Document{Name: "Autopilot", Components: []emit.ComponentDoc{numberProperty("Gain", 7.5)}}
	require.NoError(s.T(), vehicle.Merge(path, []emit.Document{doc}))

	out, err := os.ReadFile(path)
	require.NoError(s.T(), err)
	s.Contains(string(out), `value="1"`)
	s.NotContains(string(out), `value="7.5"`)
}

func (s *MergeSuite) TestMergeIgnoresBlockWithNoMatchingDocument() {
	path := s.writeFixture(`<vehicle><microprocessor_definition name="Other"><PropertyNumber name="Gain" value="1"/></microprocessor_definition></vehicle>`)

	doc := emit.Document{Name: "Autopilot", Components: []emit.ComponentDoc{numberProperty("Gain", 7.5)}}
	require.NoError(s.T(), vehicle.Merge(path, []emit.Document{doc}))

	out, err := os.ReadFile(path)
	require.NoError(s.T(), err)
	s.Contains(string(out), `value="1"`)
}

func (s *MergeSuite) TestMergeDropdownMatchesByOptionLabelNotIndex() {
	path := s.writeFixture(`<vehicle><microprocessor_definition name="Autopilot">` +
		`<PropertyDropdown name="Mode" value="0">` +
		`<option option_name="Manual" index="0"/>` +
		`<option option_name="Auto" index="1"/>` +
		`</PropertyDropdown>` +
		`</microprocessor_definition></vehicle>`)

	doc := emit.Document{Name: "Autopilot", Components: []emit.ComponentDoc{{
		Kind:       "PropertyDropdown",
		Properties: map[string]interface{}{"name": "Mode", "value": "Auto"},
	}}}
	require.NoError(s.T(), vehicle.Merge(path, []emit.Document{doc}))

	out, err := os.ReadFile(path)
	require.NoError(s.T(), err)
	s.Contains(string(out), `<PropertyDropdown name="Mode" value="1">`)
}
