// Package mcp exposes the companion over the Model Context Protocol so
// assistants can drive campaigns through typed tools: creating and
// switching campaigns, adjusting resources, journaling, rolling dice,
// and reading the campaign catalog as a resource.
package mcp

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/solo-blaster/companion/internal/dice"
	"github.com/solo-blaster/companion/internal/store"
)

const (
	serverName    = "solo-blaster-companion"
	serverVersion = "0.1.0"
)

// Server is the MCP surface over one store.
type Server struct {
	mcpServer *mcp.Server
	st        *store.Store
}

// New builds an MCP server with every tool and resource registered.
func New(st *store.Store, roller *dice.Roller) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, campaignCreateTool(), campaignCreateHandler(st))
	mcp.AddTool(mcpServer, campaignSwitchTool(), campaignSwitchHandler(st))
	mcp.AddTool(mcpServer, campaignExportTool(), campaignExportHandler(st))
	mcp.AddTool(mcpServer, campaignImportTool(), campaignImportHandler(st))
	mcp.AddTool(mcpServer, resourceAdjustTool(), resourceAdjustHandler(st))
	mcp.AddTool(mcpServer, journalAppendTool(), journalAppendHandler(st))
	mcp.AddTool(mcpServer, epilogueStartTool(), epilogueStartHandler(st))
	mcp.AddTool(mcpServer, diceRollTool(), diceRollHandler(roller))
	mcp.AddTool(mcpServer, sheetGetTool(), sheetGetHandler(st))
	mcp.AddTool(mcpServer, worldAdjacentTool(), worldAdjacentHandler(st))

	mcpServer.AddResource(campaignListResource(), campaignListResourceHandler(st))

	return &Server{mcpServer: mcpServer, st: st}
}

// Run serves MCP over stdio until the context is cancelled. Store
// changes are pushed to subscribed clients as resource-updated
// notifications for the campaign catalog.
func (s *Server) Run(ctx context.Context) error {
	cancel := s.st.Subscribe(func() {
		if err := s.mcpServer.ResourceUpdated(ctx, &mcp.ResourceUpdatedNotificationParams{URI: CampaignListURI}); err != nil {
			log.Printf("resource updated notify failed: uri=%s err=%v", CampaignListURI, err)
		}
	})
	defer cancel()

	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
