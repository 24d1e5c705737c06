package command

import (
	"errors"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return NewRegistry(cat, testLogger())
}

func TestParseDefinitionBareName(t *testing.T) {
	reg := newTestRegistry(t)

	id, err := reg.ParseDefinition("ScrollUp")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != CmdScrollUp {
		t.Fatalf("expected static id %d, got %d", CmdScrollUp, id)
	}
	if reg.Len() != 0 {
		t.Fatalf("bare name must not register an instance, got %d", reg.Len())
	}
}

func TestParseDefinitionWithArgument(t *testing.T) {
	reg := newTestRegistry(t)

	id, err := reg.ParseDefinition("ScrollUp n=5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id < FirstInstanceID {
		t.Fatalf("expected instance id >= %d, got %d", FirstInstanceID, id)
	}
	inst, ok := reg.FindByID(id)
	if !ok {
		t.Fatalf("instance %d not found", id)
	}
	if inst.OriginID != CmdScrollUp {
		t.Fatalf("expected origin %d, got %d", CmdScrollUp, inst.OriginID)
	}
	if inst.Definition != "ScrollUp n=5" {
		t.Fatalf("expected verbatim definition, got %q", inst.Definition)
	}
	if n := inst.IntArg("n", -1); n != 5 {
		t.Fatalf("expected n=5, got %d", n)
	}
}

func TestParseDefinitionCanonicalizesOrigin(t *testing.T) {
	reg := newTestRegistry(t)

	// ScrollDown shares ScrollUp's argument shape but the instance keeps
	// the pre-canonicalization origin
	id, err := reg.ParseDefinition("ScrollDown n=3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	inst, ok := reg.FindByID(id)
	if !ok {
		t.Fatalf("instance %d not found", id)
	}
	if inst.OriginID != CmdScrollDown {
		t.Fatalf("expected origin %d, got %d", CmdScrollDown, inst.OriginID)
	}
	if n := inst.IntArg("n", -1); n != 3 {
		t.Fatalf("expected n=3, got %d", n)
	}

	id, err = reg.ParseDefinition("CreateAnnotHighlight color=yellow")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	inst, _ = reg.FindByID(id)
	if inst.OriginID != CmdCreateAnnotHighlight {
		t.Fatalf("expected origin %d, got %d", CmdCreateAnnotHighlight, inst.OriginID)
	}
}

func TestParseDefinitionBoolFlag(t *testing.T) {
	reg := newTestRegistry(t)

	id, err := reg.ParseDefinition("CreateAnnotText openEdit")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	inst, ok := reg.FindByID(id)
	if !ok {
		t.Fatalf("instance %d not found", id)
	}
	if !inst.BoolArg("openEdit", false) {
		t.Fatal("expected openEdit true")
	}
}

func TestParseDefinitionUnknownCommand(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ParseDefinition("Frobnicate")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
	if reg.Len() != 0 {
		t.Fatalf("failed parse must not register, got %d", reg.Len())
	}
}

func TestParseDefinitionRejectsArgsOnPlainCommand(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ParseDefinition("Exit now")
	if !errors.Is(err, ErrNoArguments) {
		t.Fatalf("expected ErrNoArguments, got %v", err)
	}
}

func TestParseDefinitionInvalidColorOnly(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ParseDefinition("CreateAnnotText color=notacolor")
	if !errors.Is(err, ErrNoArgumentsParsed) {
		t.Fatalf("expected ErrNoArgumentsParsed, got %v", err)
	}
	if reg.Len() != 0 {
		t.Fatalf("failed parse must not register, got %d", reg.Len())
	}
}

func TestParseDefinitionInvalidColorWithValidArg(t *testing.T) {
	reg := newTestRegistry(t)

	id, err := reg.ParseDefinition("CreateAnnotText color=notacolor openEdit")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	inst, ok := reg.FindByID(id)
	if !ok {
		t.Fatalf("instance %d not found", id)
	}
	if _, ok := inst.Arg("color"); ok {
		t.Fatal("expected invalid color argument to be absent")
	}
	if !inst.BoolArg("openEdit", false) {
		t.Fatal("expected openEdit true")
	}
}

func TestParseDefinitionDistinctIDsForSameText(t *testing.T) {
	reg := newTestRegistry(t)

	first, err := reg.ParseDefinition("ScrollUp n=5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	second, err := reg.ParseDefinition("ScrollUp n=5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, both %d", first)
	}
	if _, ok := reg.FindByID(first); !ok {
		t.Fatalf("first instance %d not found", first)
	}
	if _, ok := reg.FindByID(second); !ok {
		t.Fatalf("second instance %d not found", second)
	}
}

func TestClearKeepsIDsMonotonic(t *testing.T) {
	reg := newTestRegistry(t)

	first, err := reg.ParseDefinition("ScrollUp n=1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	reg.Clear()
	if reg.Len() != 0 {
		t.Fatalf("expected empty registry after clear, got %d", reg.Len())
	}
	if _, ok := reg.FindByID(first); ok {
		t.Fatalf("instance %d must be gone after clear", first)
	}

	second, err := reg.ParseDefinition("ScrollUp n=2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if second <= first {
		t.Fatalf("expected id beyond %d after clear, got %d", first, second)
	}
}

func TestTypedRetrievalMismatchReturnsDefault(t *testing.T) {
	reg := newTestRegistry(t)

	id, err := reg.ParseDefinition("ScrollUp n=5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	inst, _ := reg.FindByID(id)

	// n holds an int; asking for a bool or string must yield the default,
	// never another payload
	if got := inst.BoolArg("n", true); got != true {
		t.Fatalf("expected bool default, got %v", got)
	}
	if got := inst.StrArg("n", "fallback"); got != "fallback" {
		t.Fatalf("expected string default, got %q", got)
	}
	if got := inst.IntArg("missing", -7); got != -7 {
		t.Fatalf("expected int default for absent arg, got %d", got)
	}
}

func TestArgLookupCaseInsensitive(t *testing.T) {
	reg := newTestRegistry(t)

	id, err := reg.ParseDefinition("CreateAnnotText openEdit=1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	inst, _ := reg.FindByID(id)
	if !inst.BoolArg("OPENEDIT", false) {
		t.Fatal("expected case-insensitive arg lookup")
	}
}

func TestParseDefinitionExecArguments(t *testing.T) {
	reg := newTestRegistry(t)

	id, err := reg.ParseDefinition(`Exec filter=*.pdf acrobat.exe %1`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	inst, _ := reg.FindByID(id)
	if got := inst.StrArg("filter", ""); got != "*.pdf" {
		t.Fatalf("expected filter *.pdf, got %q", got)
	}
	if got := inst.StrArg("cmd", ""); got != "acrobat.exe %1" {
		t.Fatalf("expected cmd text, got %q", got)
	}
}
