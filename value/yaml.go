package value

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// ToYAML converts a tree into a yaml.v3 node graph. Mapping nodes follow the object's
// key order so the YAML rendering lines up with the JSON one.
func ToYAML(v any) *yaml.Node {
	switch t := FromAny(v).(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}
	case Number:
		tag := "!!float"
		if _, err := t.Int64(); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(t)}
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t {
			n.Content = append(n.Content, ToYAML(e))
		}
		return n
	case *Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		t.Range(func(k string, e any) bool {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				ToYAML(e),
			)
			return true
		})
		return n
	default:
		n := &yaml.Node{}
		if err := n.Encode(t); err != nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}
		return n
	}
}

// MarshalYAML renders a tree as a YAML document.
func MarshalYAML(v any) ([]byte, error) { return yaml.Marshal(ToYAML(v)) }
