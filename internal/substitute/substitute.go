// Package substitute implements variable expansion for reusable block
// templates. Every function is pure: inputs are never mutated, so one block
// tree can be expanded many times on a page with different bindings.
package substitute

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lowkit/lowkit/internal/config"
)

// Vars maps variable names to scalar bindings for one block occurrence.
type Vars map[string]any

// identifierPattern matches a whole $identifier token. Maximal munch keeps
// $icon from matching inside $iconColor.
var identifierPattern = regexp.MustCompile(`\$[a-zA-Z][a-zA-Z0-9]*`)

// Value replaces every bound $identifier token in s with the string form of
// its binding. Unmatched tokens are left verbatim: a missing variable means
// "no override provided", not a failure.
func Value(s string, vars Vars) string {
	if !strings.Contains(s, "$") {
		return s
	}

	return identifierPattern.ReplaceAllStringFunc(s, func(token string) string {
		bound, ok := vars[token[1:]]
		if !ok {
			return token
		}
		return stringify(bound)
	})
}

// Props returns a new props map with string values substituted, nested object
// values recursed into and keys normalized. Numeric and boolean values pass
// through untouched.
func Props(props map[string]any, vars Vars) map[string]any {
	if props == nil {
		return nil
	}

	out := make(map[string]any, len(props))
	for key, value := range props {
		out[NormalizeKey(key)] = substituteAny(value, vars)
	}
	return out
}

func substituteAny(value any, vars Vars) any {
	switch typed := value.(type) {
	case string:
		return Value(typed, vars)
	case map[string]any:
		return Props(typed, vars)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = substituteAny(item, vars)
		}
		return out
	default:
		return value
	}
}

// Children maps over a mixed child list: text entries get Value, component
// entries get full recursive substitution.
func Children(children []config.Child, vars Vars) []config.Child {
	if children == nil {
		return nil
	}

	out := make([]config.Child, len(children))
	for i, child := range children {
		if child.Component != nil {
			expanded := Component(*child.Component, vars)
			out[i] = config.Child{Component: &expanded}
			continue
		}
		out[i] = config.Child{Text: Value(child.Text, vars)}
	}
	return out
}

// Component returns a new component tree with vars substituted into props,
// content and children.
func Component(component config.Component, vars Vars) config.Component {
	return config.Component{
		Type:     component.Type,
		Props:    Props(component.Props, vars),
		Content:  Value(component.Content, vars),
		Children: Children(component.Children, vars),
	}
}

func stringify(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
