// Package types contains MCP protocol tool definitions
package types

import "encoding/json"

// Tool represents a tool the client can call
type Tool struct {
	BaseMetadata
	Description  string            `json:"description,omitempty"`
	InputSchema  ToolInputSchema   `json:"inputSchema"`
	OutputSchema *ToolOutputSchema `json:"outputSchema,omitempty"`
	Annotations  *ToolAnnotations  `json:"annotations,omitempty"`
	Meta         Meta              `json:"_meta,omitempty"`

	hasInputSchema bool
}

// HasInputSchema reports whether the tool carried an inputSchema key on
// the wire at all, as opposed to one that was present but simply omitted
// every sub-field. A caller substituting a default schema should key on
// this, not on InputSchema being the zero value.
func (t Tool) HasInputSchema() bool { return t.hasInputSchema }

// UnmarshalJSON decodes a Tool normally, then separately probes for the
// presence of the inputSchema key so HasInputSchema can distinguish an
// absent key from one whose value happens to decode to the zero
// ToolInputSchema.
func (t *Tool) UnmarshalJSON(data []byte) error {
	type alias Tool
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*t = Tool(a)

	var probe struct {
		InputSchema *json.RawMessage `json:"inputSchema"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	t.hasInputSchema = probe.InputSchema != nil
	return nil
}

// ToolInputSchema defines the expected parameters for the tool
type ToolInputSchema struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Required   []string               `json:"required,omitempty"`
}

// ToolOutputSchema defines the structure of the tool's output
type ToolOutputSchema struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Required   []string               `json:"required,omitempty"`
}

// ToolAnnotations provide additional properties describing a Tool to clients
type ToolAnnotations struct {
	Title           string `json:"title,omitempty"`
	ReadOnlyHint    bool   `json:"readOnlyHint,omitempty"`
	DestructiveHint bool   `json:"destructiveHint,omitempty"`
	IdempotentHint  bool   `json:"idempotentHint,omitempty"`
	OpenWorldHint   bool   `json:"openWorldHint,omitempty"`
}

// Tool response types

// ListToolsResult is the server's response to a tools/list request
type ListToolsResult struct {
	Tools      []Tool  `json:"tools"`
	NextCursor *Cursor `json:"nextCursor,omitempty"`
	Meta       Meta    `json:"_meta,omitempty"`
}

// CallToolResult is the server's response to a tools/call request
type CallToolResult struct {
	Content []interface{} `json:"content"` // Using interface{} for flexible JSON unmarshaling
	IsError bool          `json:"isError,omitempty"`
	Meta    Meta          `json:"_meta,omitempty"`
}

// GetTextContent extracts text content from the result as properly typed TextContent structs
func (ctr *CallToolResult) GetTextContent() []TextContent {
	var texts []TextContent
	for _, content := range ctr.Content {
		if contentMap, ok := content.(map[string]interface{}); ok {
			if contentType, ok := contentMap["type"].(string); ok && contentType == "text" {
				if text, ok := contentMap["text"].(string); ok {
					textContent := TextContent{
						Type: contentType,
						Text: text,
					}
					// Parse annotations if present
					if annotations, ok := contentMap["annotations"].(map[string]interface{}); ok {
						textContent.Annotations = parseAnnotations(annotations)
					}
					texts = append(texts, textContent)
				}
			}
		}
	}
	return texts
}

// GetTextStrings is a convenience method that returns just the text strings
func (ctr *CallToolResult) GetTextStrings() []string {
	var texts []string
	textContents := ctr.GetTextContent()
	for _, tc := range textContents {
		texts = append(texts, tc.Text)
	}
	return texts
}

// parseAnnotations converts a map to Annotations struct
func parseAnnotations(annotationMap map[string]interface{}) *Annotations {
	annotations := &Annotations{}

	if audience, ok := annotationMap["audience"].([]interface{}); ok {
		for _, role := range audience {
			if roleStr, ok := role.(string); ok {
				annotations.Audience = append(annotations.Audience, Role(roleStr))
			}
		}
	}

	if priority, ok := annotationMap["priority"].(float64); ok {
		priorityInt := int(priority)
		annotations.Priority = &priorityInt
	}

	return annotations
}
