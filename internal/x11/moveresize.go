package x11

import "github.com/BurntSushi/xgb/xproto"

// MoveResizeAtom is the EWMH message asking the WM to move or resize a window.
const MoveResizeAtom = "_NET_WM_MOVERESIZE"

// _NET_WM_MOVERESIZE direction codes and source indications.
const (
	MoveResizeMove    = 8
	SourceApplication = 1
)

// NewMoveEvent builds the client message that asks the window manager to
// move win so that its origin lands at (x, y) in root coordinates. The
// button field is unused for programmatic moves.
func NewMoveEvent(win xproto.Window, atom xproto.Atom, x, y int) xproto.ClientMessageEvent {
	const noButton = 0
	return xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   atom,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(int32(x)),
			uint32(int32(y)),
			MoveResizeMove,
			noButton,
			SourceApplication,
		}),
	}
}
