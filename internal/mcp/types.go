package mcp

// SetClickThroughInput is the input for the set_click_through tool.
type SetClickThroughInput struct {
	Window string `json:"window,omitempty" jsonschema:"Native window handle: X11 window id or Win32 HWND, decimal or 0x-prefixed hex"`
	Title  string `json:"title,omitempty" jsonschema:"X11 only: substring of the window title (_NET_WM_NAME). Used instead of window."`
	Active bool   `json:"active,omitempty" jsonschema:"X11 only: target the active window (_NET_ACTIVE_WINDOW). Used instead of window."`
	Ignore bool   `json:"ignore" jsonschema:"required,true makes the window ignore mouse events; false restores normal pointer handling"`
}

// SetClickThroughOutput is the output for the set_click_through tool.
type SetClickThroughOutput struct {
	Window  string `json:"window"`
	Ignores bool   `json:"ignores"`
	Backend string `json:"backend"`
}

// GetClickThroughInput is the input for the get_click_through tool.
type GetClickThroughInput struct {
	Window string `json:"window,omitempty" jsonschema:"Native window handle: X11 window id or Win32 HWND, decimal or 0x-prefixed hex"`
	Title  string `json:"title,omitempty" jsonschema:"X11 only: substring of the window title (_NET_WM_NAME). Used instead of window."`
	Active bool   `json:"active,omitempty" jsonschema:"X11 only: target the active window (_NET_ACTIVE_WINDOW). Used instead of window."`
}

// GetClickThroughOutput is the output for the get_click_through tool.
type GetClickThroughOutput struct {
	Window  string `json:"window"`
	Ignores bool   `json:"ignores"`
	Backend string `json:"backend"`
}

// MoveWindowInput is the input for the move_window tool.
type MoveWindowInput struct {
	Window string `json:"window,omitempty" jsonschema:"X11 window id, decimal or 0x-prefixed hex"`
	Title  string `json:"title,omitempty" jsonschema:"Substring of the window title (_NET_WM_NAME). Used instead of window."`
	Active bool   `json:"active,omitempty" jsonschema:"Target the active window (_NET_ACTIVE_WINDOW). Used instead of window."`
	X      int    `json:"x" jsonschema:"required,Target x coordinate of the window origin in root coordinates"`
	Y      int    `json:"y" jsonschema:"required,Target y coordinate of the window origin in root coordinates"`
}

// MoveWindowOutput is the output for the move_window tool.
type MoveWindowOutput struct {
	Window    string `json:"window"`
	Requested bool   `json:"requested"`
}
