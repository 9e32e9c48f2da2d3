package vehicle

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/stormworks-utils/sw-mc-builder/emit"
)

// propertyTags lists the live-XML element names a microprocessor_definition
// block's user-editable controls appear under, matching the original
// implementation's PROPERTIES tuple (PropertyNumber, PropertySlider,
// PropertyText, PropertyToggle, PropertyDropdown).
var propertyTags = []string{"PropertyNumber", "PropertySlider", "PropertyText", "PropertyToggle", "PropertyDropdown"}

// Merge updates the microprocessor_definition blocks of the vehicle file at
// path in place, writing each compiled document's non-force-written
// property values into the matching live block. A block is matched to a
// document by its "name" attribute; blocks with no matching document, and
// properties flagged force_property in the live file, are left untouched.
//
// Synthesizing a brand-new microprocessor_definition block (full component
// list, wiring, icon) from scratch is the host simulator's XML writer and
// PNG icon packer, both out of scope here; Merge only reconciles the
// property values of blocks that already exist in the vehicle file, which
// is the part of the original replace_in_vehicle flow this module owns.
func Merge(path string, docs []emit.Document) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("vehicle.Merge: reading %s: %w", path, err)
	}

	var root Node
	if err := xml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("vehicle.Merge: parsing %s: %w", path, err)
	}

	byName := make(map[string]emit.Document, len(docs))
	for _, d := range docs {
		byName[d.Name] = d
	}

	for _, def := range root.Find("microprocessor_definition") {
		name, ok := def.Attr("name")
		if !ok {
			continue
		}
		doc, ok := byName[name]
		if !ok {
			continue
		}
		mergeProperties(def, doc)
	}

	out, err := xml.MarshalIndent(&root, "", "  ")
	if err != nil {
		return fmt.Errorf("vehicle.Merge: serializing %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("vehicle.Merge: writing %s: %w", path, err)
	}
	return nil
}

// mergeProperties writes doc's compiled property values into def's live
// PropertyXxx children, skipping any the vehicle file has flagged
// force_property="true" and matching dropdown options by their option_name
// attribute since in-game reordering can shift a dropdown's numeric index.
func mergeProperties(def *Node, doc emit.Document) {
	compiled := compiledProperties(doc)

	for _, tag := range propertyTags {
		for _, live := range def.FindChildren(tag) {
			if forced, _ := live.Attr("force_property"); forced == "true" {
				continue
			}
			propName, ok := live.Attr("name")
			if !ok {
				continue
			}
			value, ok := compiled[propName]
			if !ok {
				continue
			}
			if tag == "PropertyDropdown" {
				mergeDropdown(live, value)
				continue
			}
			live.SetAttr("value", value)
		}
	}
}

// mergeDropdown resolves value (an option label) to the matching
// option_name child's index, rather than trusting a raw numeric index that
// may no longer point at the same option.
func mergeDropdown(live *Node, value string) {
	for _, opt := range live.FindChildren("option") {
		if label, ok := opt.Attr("option_name"); ok && label == value {
			if idx, ok := opt.Attr("index"); ok {
				live.SetAttr("value", idx)
			}
			return
		}
	}
}

// compiledProperties flattens doc's property-kind components into a
// name -> value map ready for mergeProperties to consult. A dropdown's
// default index is translated to its option label.
func compiledProperties(doc emit.Document) map[string]string {
	out := make(map[string]string)
	for _, c := range doc.Components {
		name, hasName := c.Properties["name"].(string)
		if !hasName {
			continue
		}
		value, hasValue := c.Properties["value"]
		if !hasValue {
			continue
		}
		if options, ok := c.Properties["options"].([]string); ok {
			if idx, ok := value.(int); ok && idx >= 0 && idx < len(options) {
				value = options[idx]
			}
		}
		out[name] = fmt.Sprintf("%v", value)
	}
	return out
}
