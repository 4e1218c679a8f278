package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jacsander/google-ads-mcp-server/internal/ads"
	"github.com/jacsander/google-ads-mcp-server/internal/mcp"
)

// Registry is the tool provider behind the dispatcher. *ads.Registry is the
// production implementation; tests substitute their own.
type Registry interface {
	ListTools(ctx context.Context) ([]mcp.Tool, error)
	CallTool(ctx context.Context, name string, args mcp.M) (interface{}, error)
}

// Service routes JSON-RPC requests to their MCP method handlers. It holds
// no mutable state, so one instance serves every request concurrently.
type Service struct {
	registry Registry
}

func NewService(registry Registry) *Service {
	return &Service{registry: registry}
}

// Dispatch handles one request and returns the response to serialize. A nil
// response means the request was a notification and no bytes belong on the
// wire. Failures never escape: the worst outcome is an internal error
// response.
func (s *Service) Dispatch(ctx context.Context, req *mcp.Request) (resp *mcp.Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("method", req.Method).Msg("dispatch panic")
			resp = mcp.NewErrorResponse(req.ID, mcp.ErrInternalError.Code, fmt.Errorf("%v", r))
		}
	}()

	// Notifications are acknowledged silently, id or no id. The prefix
	// check runs before anything else so future notification methods
	// never fall through to the unknown-method error.
	if strings.HasPrefix(req.Method, mcp.NotificationPrefix) {
		log.Debug().Str("method", req.Method).Msg("notification acknowledged")
		return nil
	}
	if !req.HasID() {
		log.Debug().Str("method", req.Method).Msg("request without id, nothing to answer")
		return nil
	}

	switch req.Method {
	case mcp.MethodInitialize:
		return s.initialize(req)
	case mcp.MethodToolsList:
		return s.toolsList(ctx, req)
	case mcp.MethodToolsCall:
		return s.toolsCall(ctx, req)
	case mcp.MethodResourcesList:
		return mcp.NewResponse(req.ID, mcp.NewResourcesListResponse())
	default:
		return mcp.NewErrorResponse(req.ID, mcp.ErrMethodNotFound.Code, fmt.Errorf("Method not found: %s", req.Method))
	}
}

func (s *Service) initialize(req *mcp.Request) *mcp.Response {
	if initReq, err := parseParams[mcp.InitializeRequest](req.Params); err == nil && initReq.ClientInfo != nil {
		log.Info().Str("client", initReq.ClientInfo.Name).Str("version", initReq.ClientInfo.Version).Msg("client initialized")
	}
	return mcp.NewResponse(req.ID, InitializeResponse)
}

func (s *Service) toolsList(ctx context.Context, req *mcp.Request) *mcp.Response {
	tools := s.listTools(ctx)
	for i := range tools {
		tools[i].InputSchema = mcp.NormalizeToolSchema(tools[i].InputSchema)
	}
	return mcp.NewResponse(req.ID, mcp.ToolsListResponse{Tools: tools})
}

// listTools queries the registry, substituting the static fallback set when
// the registry is missing, errors, panics or comes back empty. Clients can
// rely on the list never being empty.
func (s *Service) listTools(ctx context.Context) (tools []mcp.Tool) {
	if s.registry == nil {
		return FallbackTools()
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("tool registry panicked, using fallback tool set")
			tools = FallbackTools()
		}
	}()
	listed, err := s.registry.ListTools(ctx)
	if err != nil || len(listed) == 0 {
		if err != nil {
			log.Warn().Err(err).Msg("tool registry unavailable, using fallback tool set")
		}
		return FallbackTools()
	}
	return listed
}

func (s *Service) toolsCall(ctx context.Context, req *mcp.Request) *mcp.Response {
	callReq, err := parseParams[mcp.ToolsCallRequest](req.Params)
	if err != nil {
		callReq = &mcp.ToolsCallRequest{}
	}

	log.Info().Str("tool", callReq.Name).Msg("tool call")
	outcome, err := s.callTool(ctx, callReq.Name, callReq.Arguments)
	if err != nil {
		log.Warn().Err(err).Str("tool", callReq.Name).Msg("tool call failed")
		callErr := fmt.Errorf("Error executing tool %s: %s", callReq.Name, ads.Enrich(err))
		return mcp.NewErrorResponseData(req.ID, mcp.ErrInternalError.Code, callErr, mcp.M{
			"tool":      callReq.Name,
			"arguments": callReq.Arguments,
		})
	}
	return mcp.NewResponse(req.ID, NormalizeOutcome(outcome))
}

func (s *Service) callTool(ctx context.Context, name string, args mcp.M) (outcome interface{}, err error) {
	if s.registry == nil {
		return nil, errors.New("tool registry not configured")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return s.registry.CallTool(ctx, name, args)
}

func parseParams[T any](params interface{}) (*T, error) {
	if params == nil {
		return nil, errors.New("params is nil")
	}

	jsonData, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("cannot encode params: %v", err)
	}

	var result T
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return nil, fmt.Errorf("cannot decode params: %v", err)
	}

	return &result, nil
}
