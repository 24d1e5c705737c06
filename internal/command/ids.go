package command

// ID identifies a command. Static ids come from the catalog; instance ids
// are minted by the Registry starting at FirstInstanceID.
type ID int

// CmdNone is the zero id, returned alongside errors.
const CmdNone ID = 0

// Well-known static ids referenced by code, chiefly the argument-bearing
// commands and the canonicalization families. Values must match
// catalog.yaml; LoadCatalog verifies the alignment.
const (
	CmdScrollUp     ID = 120
	CmdScrollDown   ID = 121
	CmdGoToNextPage ID = 124
	CmdGoToPrevPage ID = 125

	CmdCreateAnnotText           ID = 200
	CmdCreateAnnotLink           ID = 201
	CmdCreateAnnotFreeText       ID = 202
	CmdCreateAnnotLine           ID = 203
	CmdCreateAnnotSquare         ID = 204
	CmdCreateAnnotCircle         ID = 205
	CmdCreateAnnotPolygon        ID = 206
	CmdCreateAnnotPolyLine       ID = 207
	CmdCreateAnnotHighlight      ID = 208
	CmdCreateAnnotUnderline      ID = 209
	CmdCreateAnnotSquiggly       ID = 210
	CmdCreateAnnotStrikeOut      ID = 211
	CmdCreateAnnotRedact         ID = 212
	CmdCreateAnnotStamp          ID = 213
	CmdCreateAnnotCaret          ID = 214
	CmdCreateAnnotInk            ID = 215
	CmdCreateAnnotPopup          ID = 216
	CmdCreateAnnotFileAttachment ID = 217

	CmdExec           ID = 240
	CmdCommandPalette ID = 241
)

// FirstInstanceID is the first id handed out to registered command
// instances. The static id space must stay below it.
const FirstInstanceID ID = 10000

// wellKnownIDs is checked against the catalog at load time so the
// constants above cannot drift from the data file.
var wellKnownIDs = map[string]ID{
	"ScrollUp":                  CmdScrollUp,
	"ScrollDown":                CmdScrollDown,
	"GoToNextPage":              CmdGoToNextPage,
	"GoToPrevPage":              CmdGoToPrevPage,
	"CreateAnnotText":           CmdCreateAnnotText,
	"CreateAnnotLink":           CmdCreateAnnotLink,
	"CreateAnnotFreeText":       CmdCreateAnnotFreeText,
	"CreateAnnotLine":           CmdCreateAnnotLine,
	"CreateAnnotSquare":         CmdCreateAnnotSquare,
	"CreateAnnotCircle":         CmdCreateAnnotCircle,
	"CreateAnnotPolygon":        CmdCreateAnnotPolygon,
	"CreateAnnotPolyLine":       CmdCreateAnnotPolyLine,
	"CreateAnnotHighlight":      CmdCreateAnnotHighlight,
	"CreateAnnotUnderline":      CmdCreateAnnotUnderline,
	"CreateAnnotSquiggly":       CmdCreateAnnotSquiggly,
	"CreateAnnotStrikeOut":      CmdCreateAnnotStrikeOut,
	"CreateAnnotRedact":         CmdCreateAnnotRedact,
	"CreateAnnotStamp":          CmdCreateAnnotStamp,
	"CreateAnnotCaret":          CmdCreateAnnotCaret,
	"CreateAnnotInk":            CmdCreateAnnotInk,
	"CreateAnnotPopup":          CmdCreateAnnotPopup,
	"CreateAnnotFileAttachment": CmdCreateAnnotFileAttachment,
	"Exec":                      CmdExec,
	"CommandPalette":            CmdCommandPalette,
}
