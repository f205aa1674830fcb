// Package mcpserver exposes the type engine as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"showdown-teambuilder/analysis"
	"showdown-teambuilder/service"
)

type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TypeEffectivenessArgs struct {
	AttackType     string   `json:"attack_type" jsonschema:"Attacking move type, e.g. ground"`
	DefendingTypes []string `json:"defending_types" jsonschema:"One or two defending types"`
	Ability        string   `json:"ability,omitempty" jsonschema:"Defender ability, e.g. levitate"`
	Item           string   `json:"item,omitempty" jsonschema:"Defender item, e.g. air-balloon"`
	Generation     int      `json:"generation,omitempty" jsonschema:"Generation 1-9 (0 = server default)"`
}

type TeamArgs struct {
	Team       service.TeamRef `json:"team" jsonschema:"Team to analyse"`
	Generation int             `json:"generation,omitempty" jsonschema:"Generation 1-9 (0 = build or server default)"`
}

type RivalMatchupArgs struct {
	Mine       service.TeamRef `json:"mine" jsonschema:"Your team"`
	Rival      service.TeamRef `json:"rival" jsonschema:"The rival team"`
	Generation int             `json:"generation,omitempty" jsonschema:"Generation 1-9 (0 = your build or server default)"`
}

type matchupResult struct {
	Generation int `json:"generation"`
	analysis.Matchup
}

type TypeChartArgs struct {
	Generation int `json:"generation,omitempty" jsonschema:"Generation 1-9 (0 = server default)"`
}

// New builds the MCP server and returns the registered tools for discovery endpoints.
func New(svc *service.Service, version string) (*mcp.Server, []ToolInfo) {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "showdown-teambuilder",
			Version: version,
		},
		nil,
	)
	h := &handlers{svc: svc}
	registry := make([]ToolInfo, 0, 5)

	addTool(server, &registry, &mcp.Tool{
		Name:        "type_effectiveness",
		Description: "Damage multiplier of one attack type against a typing, with optional ability and item",
	}, h.typeEffectiveness)

	addTool(server, &registry, &mcp.Tool{
		Name:        "analyze_team",
		Description: "Defensive and offensive matrices, critical rows, advice and average stats for a team",
	}, h.analyzeTeam)

	addTool(server, &registry, &mcp.Tool{
		Name:        "recommend",
		Description: "Threats with counter types, coverage gaps and a suggested swap for a team",
	}, h.recommend)

	addTool(server, &registry, &mcp.Tool{
		Name:        "rival_matchup",
		Description: "Best multiplier each of your members reaches against each rival member",
	}, h.rivalMatchup)

	addTool(server, &registry, &mcp.Tool{
		Name:        "type_chart",
		Description: "Types and non-neutral matchups for a generation",
	}, h.typeChart)

	return server, registry
}

func addTool[T any](server *mcp.Server, registry *[]ToolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, ToolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

type handlers struct {
	svc *service.Service
}

func (h *handlers) typeEffectiveness(ctx context.Context, req *mcp.CallToolRequest, args TypeEffectivenessArgs) (*mcp.CallToolResult, any, error) {
	return toolJSON(h.svc.Effectiveness(args.AttackType, args.DefendingTypes, args.Ability, args.Item, args.Generation))
}

func (h *handlers) analyzeTeam(ctx context.Context, req *mcp.CallToolRequest, args TeamArgs) (*mcp.CallToolResult, any, error) {
	return toolJSON(h.svc.Analyze(args.Team, args.Generation))
}

func (h *handlers) recommend(ctx context.Context, req *mcp.CallToolRequest, args TeamArgs) (*mcp.CallToolResult, any, error) {
	return toolJSON(h.svc.Advise(args.Team, args.Generation))
}

func (h *handlers) rivalMatchup(ctx context.Context, req *mcp.CallToolRequest, args RivalMatchupArgs) (*mcp.CallToolResult, any, error) {
	m, gen, err := h.svc.Matchup(args.Mine, args.Rival, args.Generation)
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSON(matchupResult{Generation: gen, Matchup: m}, nil)
}

func (h *handlers) typeChart(ctx context.Context, req *mcp.CallToolRequest, args TypeChartArgs) (*mcp.CallToolResult, any, error) {
	return toolJSON(h.svc.Chart(args.Generation))
}

func toolJSON[T any](v T, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	res, err := json.Marshal(v)
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(res), nil, nil
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
