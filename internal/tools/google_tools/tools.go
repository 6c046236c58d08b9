package google_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"canvascal/internal/server"
	"canvascal/internal/tools/common"
)

// RegisterGoogleTools registers the Google OAuth tools with the MCP server.
func RegisterGoogleTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	authURLTool := mcp.NewTool("get_google_auth_url",
		mcp.WithDescription("Get the Google OAuth authorization URL. Visit it in a browser, grant calendar access, and pass the resulting code to set_google_auth_code."),
	)

	s.AddTool(authURLTool, common.InstrumentedToolHandler("get_google_auth_url", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetAuthURL(ctx, request, sc)
		}))

	authCodeTool := mcp.NewTool("set_google_auth_code",
		mcp.WithDescription("Exchange a Google OAuth authorization code for tokens. The returned refresh token should be persisted (GOOGLE_REFRESH_TOKEN) so future runs skip this step."),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("The authorization code from the Google consent page"),
		),
	)

	s.AddTool(authCodeTool, common.InstrumentedToolHandler("set_google_auth_code", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSetAuthCode(ctx, request, sc)
		}))

	return nil
}

func handleGetAuthURL(_ context.Context, _ mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	cfg := sc.GoogleConfig()
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return mcp.NewToolResultError("Google OAuth is not configured; set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET"), nil
	}

	result := "Visit this URL to authorize calendar access:\n\n" + cfg.AuthURL() +
		"\n\nThen call set_google_auth_code with the code shown after granting access."
	return mcp.NewToolResultText(result), nil
}

func handleSetAuthCode(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	code, ok := args["code"].(string)
	if !ok || code == "" {
		return mcp.NewToolResultError("code is required"), nil
	}

	cfg := sc.GoogleConfig()
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return mcp.NewToolResultError("Google OAuth is not configured; set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET"), nil
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to exchange auth code: %v", err)), nil
	}

	if token.RefreshToken == "" {
		return mcp.NewToolResultError("Google did not return a refresh token; revoke the app's access and authorize again"), nil
	}

	sc.SetGoogleRefreshToken(token.RefreshToken)

	result := "Authorization successful. Calendar tools are now available.\n\n" +
		"Refresh token (persist as GOOGLE_REFRESH_TOKEN to skip this step next time):\n" +
		token.RefreshToken
	return mcp.NewToolResultText(result), nil
}
