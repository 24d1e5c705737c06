package command

// canonicalOwner maps a static id to the command owning its argument spec
// group. Sibling commands share one argument shape: every annotation
// creation command takes the CreateAnnotText arguments and the scroll and
// page navigation commands take the ScrollUp scroll-amount argument.
//
// This is a fixed decision table, deliberately not data-driven: a command
// absent here does not accept arguments.
func canonicalOwner(id ID) (ID, bool) {
	switch id {
	case CmdCreateAnnotText,
		CmdCreateAnnotLink,
		CmdCreateAnnotFreeText,
		CmdCreateAnnotLine,
		CmdCreateAnnotSquare,
		CmdCreateAnnotCircle,
		CmdCreateAnnotPolygon,
		CmdCreateAnnotPolyLine,
		CmdCreateAnnotHighlight,
		CmdCreateAnnotUnderline,
		CmdCreateAnnotSquiggly,
		CmdCreateAnnotStrikeOut,
		CmdCreateAnnotRedact,
		CmdCreateAnnotStamp,
		CmdCreateAnnotCaret,
		CmdCreateAnnotInk,
		CmdCreateAnnotPopup,
		CmdCreateAnnotFileAttachment:
		return CmdCreateAnnotText, true
	case CmdScrollUp, CmdScrollDown, CmdGoToNextPage, CmdGoToPrevPage:
		return CmdScrollUp, true
	case CmdExec:
		return CmdExec, true
	}
	return CmdNone, false
}
