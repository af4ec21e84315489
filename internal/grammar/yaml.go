package grammar

import "gopkg.in/yaml.v3"

// ParseYAML decodes
//
//	whitespace: "[ \t\n]+"
//	tokens:
//	  - name: number
//	    pattern: "[0-9]+"
func ParseYAML(data []byte) (*Grammar, error) {
	var g Grammar
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}
