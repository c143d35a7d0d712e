package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// App represents a full low-code application document.
type App struct {
	Name        string     `yaml:"name" json:"name" validate:"required,min=1,max=100"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Pages       []Page     `yaml:"pages" json:"pages" validate:"required,min=1,dive"`
	Blocks      []Block    `yaml:"blocks,omitempty" json:"blocks,omitempty" validate:"omitempty,dive"`
	Theme       *Theme     `yaml:"theme,omitempty" json:"theme,omitempty"`
	Languages   *Languages `yaml:"languages,omitempty" json:"languages,omitempty"`
}

// Page describes a single routable page and its ordered section list.
type Page struct {
	Path     string    `yaml:"path" json:"path" validate:"required,page_path"`
	Title    string    `yaml:"title,omitempty" json:"title,omitempty"`
	Sections []Section `yaml:"sections" json:"sections" validate:"required,min=1"`
}

// Block is a named, reusable component subtree with declared variable slots.
// The block catalog is shared read-only across pages; referencing a block
// binds variables into a fresh copy of its tree, never into the template.
type Block struct {
	Name      string    `yaml:"name" json:"name" validate:"required,kebab_name"`
	Vars      []string  `yaml:"vars,omitempty" json:"vars,omitempty" validate:"omitempty,dive,var_name"`
	Component Component `yaml:"component" json:"component"`
}

// Section is either an inline component or a reference to a named block.
// A full reference uses $ref plus a vars map; the shorthand form names the
// block only and implies an empty vars map.
type Section struct {
	Ref       string         `yaml:"-" json:"-"`
	Block     string         `yaml:"-" json:"-"`
	Vars      map[string]any `yaml:"-" json:"-"`
	Component *Component     `yaml:"-" json:"-"`
}

// IsRef reports whether the section references a block rather than holding an
// inline component.
func (s Section) IsRef() bool {
	return s.Ref != "" || s.Block != ""
}

// BlockName returns the referenced block name, honouring both reference forms.
func (s Section) BlockName() string {
	if s.Ref != "" {
		return s.Ref
	}
	return s.Block
}

// UnmarshalYAML decodes a section from either reference form or an inline
// component mapping.
func (s *Section) UnmarshalYAML(value *yaml.Node) error {
	var ref struct {
		Ref   string         `yaml:"$ref"`
		Block string         `yaml:"block"`
		Vars  map[string]any `yaml:"vars"`
	}
	if err := value.Decode(&ref); err == nil && (ref.Ref != "" || ref.Block != "") {
		s.Ref = ref.Ref
		s.Block = ref.Block
		s.Vars = ref.Vars
		s.Component = nil
		return nil
	}

	var component Component
	if err := value.Decode(&component); err != nil {
		return err
	}
	s.Ref = ""
	s.Block = ""
	s.Vars = nil
	s.Component = &component
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML for JSON documents.
func (s *Section) UnmarshalJSON(data []byte) error {
	var ref struct {
		Ref   string         `json:"$ref"`
		Block string         `json:"block"`
		Vars  map[string]any `json:"vars"`
	}
	if err := json.Unmarshal(data, &ref); err == nil && (ref.Ref != "" || ref.Block != "") {
		s.Ref = ref.Ref
		s.Block = ref.Block
		s.Vars = ref.Vars
		s.Component = nil
		return nil
	}

	var component Component
	if err := json.Unmarshal(data, &component); err != nil {
		return err
	}
	s.Ref = ""
	s.Block = ""
	s.Vars = nil
	s.Component = &component
	return nil
}

// Component is the declarative unit of UI: a type tag, an open props map,
// optional inline content and an ordered list of children.
type Component struct {
	Type     string         `yaml:"type" json:"type"`
	Props    map[string]any `yaml:"props,omitempty" json:"props,omitempty"`
	Content  string         `yaml:"content,omitempty" json:"content,omitempty"`
	Children []Child        `yaml:"children,omitempty" json:"children,omitempty"`
}

// Child is a single entry in a component's child list: either a plain text
// string or a nested component.
type Child struct {
	Text      string
	Component *Component
}

// UnmarshalYAML decodes a child from a scalar string or a component mapping.
func (c *Child) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		c.Component = nil
		return value.Decode(&c.Text)
	}

	var component Component
	if err := value.Decode(&component); err != nil {
		return err
	}
	c.Text = ""
	c.Component = &component
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML for JSON documents.
func (c *Child) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		c.Component = nil
		return json.Unmarshal(data, &c.Text)
	}

	var component Component
	if err := json.Unmarshal(data, &component); err != nil {
		return err
	}
	c.Text = ""
	c.Component = &component
	return nil
}

// MarshalYAML re-emits the child in its compact authoring form.
func (c Child) MarshalYAML() (any, error) {
	if c.Component != nil {
		return c.Component, nil
	}
	return c.Text, nil
}

// MarshalJSON mirrors MarshalYAML.
func (c Child) MarshalJSON() ([]byte, error) {
	if c.Component != nil {
		return json.Marshal(c.Component)
	}
	return json.Marshal(c.Text)
}

// Theme holds the design-token categories. Every category is independently
// optional; an empty theme is valid and yields no generated styles.
type Theme struct {
	Colors       map[string]string    `yaml:"colors,omitempty" json:"colors,omitempty" validate:"omitempty,dive,theme_color"`
	Fonts        map[string]Font      `yaml:"fonts,omitempty" json:"fonts,omitempty"`
	Spacing      map[string]string    `yaml:"spacing,omitempty" json:"spacing,omitempty"`
	Animations   map[string]Animation `yaml:"animations,omitempty" json:"animations,omitempty"`
	Breakpoints  map[string]string    `yaml:"breakpoints,omitempty" json:"breakpoints,omitempty"`
	Shadows      map[string]string    `yaml:"shadows,omitempty" json:"shadows,omitempty"`
	BorderRadius map[string]string    `yaml:"borderRadius,omitempty" json:"borderRadius,omitempty"`
}

// Font describes a font category: family plus presentation attributes applied
// to the matching element group.
type Font struct {
	Family        string `yaml:"family" json:"family"`
	Fallback      string `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	Style         string `yaml:"style,omitempty" json:"style,omitempty"`
	LetterSpacing string `yaml:"letterSpacing,omitempty" json:"letterSpacing,omitempty"`
	Transform     string `yaml:"transform,omitempty" json:"transform,omitempty"`
}

// Animation is a single theme animation entry. The document form is a
// boolean (enable/disable), a bare duration string, or a structured mapping
// with duration, easing, an infinite flag and optional custom keyframes.
type Animation struct {
	Disabled  bool                         `yaml:"-" json:"-"`
	Duration  string                       `yaml:"duration,omitempty" json:"duration,omitempty"`
	Easing    string                       `yaml:"easing,omitempty" json:"easing,omitempty"`
	Infinite  bool                         `yaml:"infinite,omitempty" json:"infinite,omitempty"`
	Keyframes map[string]map[string]string `yaml:"keyframes,omitempty" json:"keyframes,omitempty"`
}

// UnmarshalYAML decodes the three authoring forms of an animation entry.
func (a *Animation) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		switch value.Tag {
		case "!!bool":
			var enabled bool
			if err := value.Decode(&enabled); err != nil {
				return err
			}
			*a = Animation{Disabled: !enabled}
			return nil
		default:
			var duration string
			if err := value.Decode(&duration); err != nil {
				return err
			}
			*a = Animation{Duration: duration}
			return nil
		}
	}

	type rawAnimation Animation
	var raw rawAnimation
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*a = Animation(raw)
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML for JSON documents.
func (a *Animation) UnmarshalJSON(data []byte) error {
	switch {
	case len(data) == 0:
		return fmt.Errorf("empty animation entry")
	case string(data) == "true":
		*a = Animation{}
		return nil
	case string(data) == "false":
		*a = Animation{Disabled: true}
		return nil
	case data[0] == '"':
		var duration string
		if err := json.Unmarshal(data, &duration); err != nil {
			return err
		}
		*a = Animation{Duration: duration}
		return nil
	}

	type rawAnimation Animation
	var raw rawAnimation
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Animation(raw)
	return nil
}

// Languages configures the language-switcher producer.
type Languages struct {
	Default   string            `yaml:"default" json:"default" validate:"required"`
	Supported []string          `yaml:"supported" json:"supported" validate:"required,min=1"`
	Labels    map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

// BlockMap builds a lookup table for blocks by name.
func BlockMap(blocks []Block) map[string]Block {
	out := make(map[string]Block, len(blocks))
	for _, block := range blocks {
		out[block.Name] = block
	}
	return out
}
