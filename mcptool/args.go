package mcptool

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetArgsMap extracts the arguments map from an MCP tool call request.
// Returns an empty map if arguments are nil or not a map.
func GetArgsMap(request mcp.CallToolRequest) map[string]any {
	if m, ok := request.Params.Arguments.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// GetStringParam extracts a string parameter from the arguments map.
// Returns the value and whether it was found and is a string.
func GetStringParam(args map[string]any, key string) (string, bool) {
	s, ok := args[key].(string)
	return s, ok
}

// OptionalStringParam returns a pointer to the string parameter, or nil
// when it is absent or not a string.
func OptionalStringParam(args map[string]any, key string) *string {
	s, ok := GetStringParam(args, key)
	if !ok {
		return nil
	}
	return &s
}

// MarshalToolResult marshals data to indented JSON and returns it as a text
// tool result.
func MarshalToolResult(data any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}
