package conversion

import "gopkg.in/yaml.v3"

const (
	strTag  = "!!str"
	mapTag  = "!!map"
	nullTag = "!!null"
)

func newMapping() *yaml.Node {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  mapTag,
	}
}

func keyScalar(value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   strTag,
		Value: value,
	}
}

// lookupValue returns the value node stored under key, or nil.
func lookupValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func insertPair(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, keyScalar(key), value)
}

// keyString converts a mapping key node to its path token. Keys must be
// literal scalars; booleans and numbers contribute their literal text
// (true -> "true", 1 -> "1").
func keyString(key *yaml.Node) (string, error) {
	if key.Kind == yaml.AliasNode {
		key = key.Alias
	}
	if key.Kind != yaml.ScalarNode {
		return "", &KeyError{Kind: kindName(key.Kind)}
	}
	if key.Tag == nullTag {
		return "", &KeyError{Kind: "null"}
	}
	return key.Value, nil
}

// custom reports whether a tag is an application-specific local tag rather
// than one of the core YAML tags.
func custom(tag string) bool {
	return len(tag) > 1 && tag[0] == '!' && tag[1] != '!'
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
