package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/clickthrough/internal/actionlog"
	"github.com/1broseidon/clickthrough/internal/platform"
)

func (s *Server) handleSetClickThrough(_ context.Context, _ *mcpsdk.CallToolRequest, args SetClickThroughInput) (*mcpsdk.CallToolResult, SetClickThroughOutput, error) {
	h, err := s.resolve(args.Window, args.Title, args.Active)
	if err != nil {
		return nil, SetClickThroughOutput{}, err
	}

	err = s.backend.SetIgnoresMouseEvents(h, args.Ignore)
	s.logger.Log(actionlog.ActionSet, uint64(h), detailsWithError(map[string]any{
		"backend": s.backend.Name(),
		"ignore":  args.Ignore,
	}, err))
	if err != nil {
		return nil, SetClickThroughOutput{}, fmt.Errorf("set_click_through on %s: %w", h, err)
	}

	ignores, err := s.backend.IgnoresMouseEvents(h)
	if err != nil {
		// The set went through; report what was requested.
		ignores = args.Ignore
	}
	return nil, SetClickThroughOutput{
		Window:  h.String(),
		Ignores: ignores,
		Backend: s.backend.Name(),
	}, nil
}

func (s *Server) handleGetClickThrough(_ context.Context, _ *mcpsdk.CallToolRequest, args GetClickThroughInput) (*mcpsdk.CallToolResult, GetClickThroughOutput, error) {
	h, err := s.resolve(args.Window, args.Title, args.Active)
	if err != nil {
		return nil, GetClickThroughOutput{}, err
	}

	ignores, err := s.backend.IgnoresMouseEvents(h)
	s.logger.Log(actionlog.ActionQuery, uint64(h), detailsWithError(map[string]any{
		"backend": s.backend.Name(),
		"ignores": ignores,
	}, err))
	if err != nil {
		return nil, GetClickThroughOutput{}, fmt.Errorf("get_click_through on %s: %w", h, err)
	}

	return nil, GetClickThroughOutput{
		Window:  h.String(),
		Ignores: ignores,
		Backend: s.backend.Name(),
	}, nil
}

func (s *Server) handleMoveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowInput) (*mcpsdk.CallToolResult, MoveWindowOutput, error) {
	mover, ok := s.backend.(platform.Mover)
	if !ok {
		return nil, MoveWindowOutput{}, fmt.Errorf("move_window is not supported by the %s backend", s.backend.Name())
	}

	h, err := s.resolve(args.Window, args.Title, args.Active)
	if err != nil {
		return nil, MoveWindowOutput{}, err
	}

	err = mover.MoveWindow(h, args.X, args.Y)
	s.logger.Log(actionlog.ActionMove, uint64(h), detailsWithError(map[string]any{
		"x": args.X,
		"y": args.Y,
	}, err))
	if err != nil {
		return nil, MoveWindowOutput{}, fmt.Errorf("move_window on %s: %w", h, err)
	}

	return nil, MoveWindowOutput{Window: h.String(), Requested: true}, nil
}

func detailsWithError(details map[string]any, err error) map[string]any {
	if err != nil {
		details["error"] = err
	}
	return details
}
