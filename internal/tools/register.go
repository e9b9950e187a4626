package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAll adds one MCP tool per registered command. Each handler
// closes over its command name and always returns a nil Go error; every
// outcome, including failures, travels inside the result envelope.
func RegisterAll(s *server.MCPServer, d *Dispatcher) {
	for _, desc := range d.reg.Descriptors() {
		schema := desc.InputSchema()
		tool := mcp.Tool{
			Name:        desc.Name,
			Description: desc.Desc,
			InputSchema: mcp.ToolInputSchema{
				Type:       "object",
				Properties: schema["properties"].(map[string]any),
			},
		}
		if required, ok := schema["required"].([]string); ok {
			tool.InputSchema.Required = required
		}

		name := desc.Name
		s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return d.Call(ctx, name, request.GetArguments()), nil
		})
	}
}
