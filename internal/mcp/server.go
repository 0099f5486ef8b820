package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"catalog/internal/notifications"
	"catalog/internal/schemes"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with tools for catalog operations
func NewServer(schemeSvc *schemes.Service, notifySvc *notifications.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Scheme Catalog",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Tool: list_schemes - List schemes, optionally of one category
	s.AddTool(
		mcp.NewTool("list_schemes",
			mcp.WithDescription("List catalog schemes in the order they were added. Use this to browse the catalog or the members of one category."),
			mcp.WithString("category",
				mcp.Description("Optional: only return schemes of this category (e.g., 'Category_3', 'Uncategorized')"),
			),
		),
		handleListSchemes(schemeSvc),
	)

	// Tool: create_scheme - Add a scheme and categorize it
	s.AddTool(
		mcp.NewTool("create_scheme",
			mcp.WithDescription("Add a new scheme to the catalog. The scheme is categorized by the current model and announced as a notification."),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("Scheme title"),
			),
			mcp.WithString("description",
				mcp.Required(),
				mcp.Description("Scheme description; markdown is rendered on the notifications page"),
			),
		),
		handleCreateScheme(schemeSvc),
	)

	// Tool: train_model - Re-cluster every scheme
	s.AddTool(
		mcp.NewTool("train_model",
			mcp.WithDescription("Train the categorizer on every stored scheme and re-assign all categories. Needs at least 2 schemes."),
		),
		handleTrainModel(schemeSvc),
	)

	// Tool: list_notifications - Latest scheme announcements
	s.AddTool(
		mcp.NewTool("list_notifications",
			mcp.WithDescription("Get the most recent scheme notifications, newest first."),
		),
		handleListNotifications(notifySvc),
	)

	return s
}

// SchemeResult represents a scheme in tool responses
type SchemeResult struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	PublishDate *string `json:"publishDate,omitempty"`
}

// NotificationResult represents a notification in tool responses
type NotificationResult struct {
	SchemeID   string `json:"schemeId"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	NotifiedAt string `json:"notifiedAt"`
}

func handleListSchemes(svc *schemes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := svc.List(ctx, req.GetString("category", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list schemes: %v", err)), nil
		}

		results := make([]SchemeResult, len(list))
		for i, s := range list {
			results[i] = schemeToResult(s)
		}
		return jsonResult(results), nil
	}
}

func handleCreateScheme(svc *schemes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title, err := req.RequireString("title")
		if err != nil {
			return mcp.NewToolResultError("title is required"), nil
		}
		description, err := req.RequireString("description")
		if err != nil {
			return mcp.NewToolResultError("description is required"), nil
		}

		scheme, err := svc.Create(ctx, schemes.CreateSchemeInput{Title: title, Description: description})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create scheme: %v", err)), nil
		}
		return jsonResult(schemeToResult(scheme)), nil
	}
}

func handleTrainModel(svc *schemes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		n, err := svc.Train(ctx)
		if errors.Is(err, schemes.ErrNotEnoughSchemes) {
			return mcp.NewToolResultError("Need at least 2 schemes to train"), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to train model: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Model trained successfully on %d schemes", n)), nil
	}
}

func handleListNotifications(svc *notifications.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := svc.Latest(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list notifications: %v", err)), nil
		}

		results := make([]NotificationResult, len(list))
		for i, n := range list {
			results[i] = NotificationResult{
				SchemeID:   n.SchemeID,
				Title:      n.Title,
				Category:   n.Category,
				NotifiedAt: n.NotifiedAt.Format("2006-01-02T15:04:05Z07:00"),
			}
		}
		return jsonResult(results), nil
	}
}

// Helper functions

func schemeToResult(s *schemes.Scheme) SchemeResult {
	a := s.ToAPI()
	return SchemeResult{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		PublishDate: a.PublishDate,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(data))
}
