package resume

import (
	"bytes"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kapabl/resumata/internal/schemas"
)

// Document is a parsed resume file. The YAML tree is kept intact so key
// order, comments, and untouched content round-trip unchanged.
type Document struct {
	root yaml.Node
	path string
}

// TechSection is one entry of the technologies list: a label plus one or
// more detail strings. A scalar details value reads as a one-element
// list. node, when set, is the original YAML mapping the section came
// from; reordering reuses it so the section is written back exactly as
// it was read.
type TechSection struct {
	Label   string
	Details []string

	node *yaml.Node
}

// Load reads and parses a resume file and checks its shape.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read resume", Cause: err}
	}

	doc := &Document{path: path}
	if err := yaml.Unmarshal(data, &doc.root); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse resume YAML", Cause: err}
	}
	if err := schemas.ValidateResume(&doc.root); err != nil {
		return nil, &LoadError{Path: path, Message: "resume has unexpected shape", Cause: err}
	}

	return doc, nil
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Summary returns the cv.summary text. ok is false when the path is
// absent from the document.
func (d *Document) Summary() (string, bool) {
	node := d.summaryNode()
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", false
	}
	return node.Value, true
}

// SetSummary replaces the cv.summary text in place. Documents without a
// summary are left alone.
func (d *Document) SetSummary(text string) {
	node := d.summaryNode()
	if node == nil || node.Kind != yaml.ScalarNode {
		return
	}
	node.SetString(text)
}

// Technologies returns the cv.sections.technologies entries in document
// order. ok is false when the path is absent.
func (d *Document) Technologies() ([]TechSection, bool) {
	seq := d.technologiesNode()
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return nil, false
	}
	sections := make([]TechSection, 0, len(seq.Content))
	for _, item := range seq.Content {
		sections = append(sections, sectionFromNode(item))
	}
	return sections, true
}

// SetTechnologies replaces the technologies list in place. Sections read
// from this document keep their original nodes; synthetic sections are
// encoded fresh. Documents without a technologies list are left alone.
func (d *Document) SetTechnologies(sections []TechSection) {
	seq := d.technologiesNode()
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return
	}
	content := make([]*yaml.Node, 0, len(sections))
	for _, section := range sections {
		if section.node != nil {
			content = append(content, section.node)
			continue
		}
		content = append(content, section.toNode())
	}
	seq.Content = content
}

// Save writes the document to path, creating parent directories as
// needed. Output uses two-space indentation.
func (d *Document) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &SaveError{Path: path, Message: "failed to create output directory", Cause: err}
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&d.root); err != nil {
		_ = encoder.Close()
		return &SaveError{Path: path, Message: "failed to encode resume YAML", Cause: err}
	}
	if err := encoder.Close(); err != nil {
		return &SaveError{Path: path, Message: "failed to encode resume YAML", Cause: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &SaveError{Path: path, Message: "failed to write resume", Cause: err}
	}
	return nil
}

func (d *Document) top() *yaml.Node {
	if d.root.Kind == yaml.DocumentNode && len(d.root.Content) > 0 {
		return d.root.Content[0]
	}
	return nil
}

func (d *Document) summaryNode() *yaml.Node {
	cv := mappingValue(d.top(), "cv")
	return mappingValue(cv, "summary")
}

func (d *Document) technologiesNode() *yaml.Node {
	cv := mappingValue(d.top(), "cv")
	sections := mappingValue(cv, "sections")
	return mappingValue(sections, "technologies")
}

// mappingValue returns the value node for key within a mapping node.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// sectionFromNode reads label and details out of a technology mapping.
func sectionFromNode(node *yaml.Node) TechSection {
	section := TechSection{node: node}
	if label := mappingValue(node, "label"); label != nil {
		section.Label = label.Value
	}
	details := mappingValue(node, "details")
	switch {
	case details == nil:
	case details.Kind == yaml.ScalarNode:
		section.Details = []string{details.Value}
	case details.Kind == yaml.SequenceNode:
		for _, item := range details.Content {
			section.Details = append(section.Details, item.Value)
		}
	}
	return section
}

// toNode encodes a synthetic section as a fresh mapping node.
func (s TechSection) toNode() *yaml.Node {
	details := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, detail := range s.Details {
		details.Content = append(details.Content, scalarNode(detail))
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			scalarNode("label"), scalarNode(s.Label),
			scalarNode("details"), details,
		},
	}
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
