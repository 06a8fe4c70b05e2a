package content

// Schema is a named JSON Schema definition for a content bank.
type Schema struct {
	Name       string
	Definition map[string]any
}

// WordProblemBankSchema describes wordproblems.yaml.
var WordProblemBankSchema = &Schema{
	Name: "word-problem-bank",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problems": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":     map[string]any{"type": "string", "pattern": "^[a-z0-9-]+$"},
						"text":   map[string]any{"type": "string", "minLength": 1},
						"a":      map[string]any{"type": "integer", "minimum": 0},
						"b":      map[string]any{"type": "integer", "minimum": 0},
						"op":     map[string]any{"type": "string", "enum": []any{"+", "-"}},
						"result": map[string]any{"type": "integer", "minimum": 0},
					},
					"required":             []any{"id", "text", "a", "b", "op", "result"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"problems"},
		"additionalProperties": false,
	},
}

// WordBankSchema describes words.yaml: word lists keyed by length.
var WordBankSchema = &Schema{
	Name: "word-bank",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type":          "object",
				"minProperties": 1,
				"propertyNames": map[string]any{"pattern": "^[0-9]+$"},
				"additionalProperties": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "string", "pattern": "^[a-z]+$"},
				},
			},
		},
		"required":             []any{"words"},
		"additionalProperties": false,
	},
}
