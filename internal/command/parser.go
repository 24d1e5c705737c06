package command

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/louisbranch/pagemark/internal/colorparse"
)

// parser consumes the argument text of one command definition against the
// spec group of its canonical owner.
type parser struct {
	specs []ArgSpec
	log   *slog.Logger
}

// parseArguments extracts argument values until the text is exhausted.
// Each iteration tries a named argument first and falls back to the
// default (positional) argument. A malformed value drops just that
// argument; the caller rejects the whole definition only when nothing at
// all was parsed.
func parseArguments(specs []ArgSpec, text string, logger *slog.Logger) []Value {
	p := parser{specs: specs, log: logger}
	var args []Value
	rest := text
	for rest != "" {
		prev := rest
		v, r, matched, ok := p.named(rest)
		if !matched {
			v, r, ok = p.defaultArg(rest)
		}
		rest = r
		if ok {
			args = append(args, v)
		}
		if rest == prev {
			// neither form advanced the cursor; bail out instead of
			// looping forever
			p.log.Warn("argument text did not advance, aborting parse", "rest", rest)
			break
		}
	}
	return args
}

// named tries to parse a named argument at the start of text:
//
//	<name> <value>
//	<name>: <value>
//	<name>=<value>
//
// and, for bools only, a bare <name> meaning true. matched reports
// whether a spec name was consumed at all (the cursor advanced); ok
// reports whether a value was produced.
func (p parser) named(text string) (v Value, rest string, matched, ok bool) {
	var spec ArgSpec
	var tail string
	found := false
	for _, s := range p.specs {
		if hasPrefixFold(text, s.Name) {
			spec = s
			tail = text[len(s.Name):]
			found = true
			break
		}
	}
	if !found {
		return Value{}, text, false, false
	}

	var valPart string
	switch {
	case tail == "":
		if spec.Kind == KindBool {
			// bare bool name at end of text means true
			return boolValue(spec.Name, true), "", true, true
		}
		return Value{}, text, false, false
	case tail[0] == ' ':
		valPart = strings.TrimLeft(tail, " ")
	case strings.HasPrefix(tail, ": "):
		valPart = strings.TrimLeft(tail[1:], " ")
	case tail[0] == '=':
		valPart = tail[1:]
	default:
		// name is a prefix of some other token
		return Value{}, text, false, false
	}

	val, after := cutToken(valPart)

	if spec.Kind == KindBool {
		b, recognized := parseBoolLiteral(val)
		if recognized {
			return boolValue(spec.Name, b), after, true, true
		}
		// Not a known bool literal: the flag is present without a value,
		// which means true. Rewind to just past the name so the token is
		// seen again by the next iteration instead of being swallowed.
		return boolValue(spec.Name, true), valPart, true, true
	}

	v, ok = p.makeValue(spec, val)
	return v, after, true, ok
}

// defaultArg parses the default (positional) argument, the first spec of
// the owner's group. String defaults greedily consume the rest of the
// text, so named arguments must come before a default string argument.
// The cursor advances past the value even when coercion fails.
func (p parser) defaultArg(text string) (v Value, rest string, ok bool) {
	spec := p.specs[0]
	valStart := strings.TrimLeft(text, " ")
	var val string
	if spec.Kind == KindString {
		val, rest = valStart, ""
	} else {
		val, rest = cutToken(valStart)
	}
	v, ok = p.makeValue(spec, val)
	return v, rest, ok
}

// makeValue coerces a value literal to the spec's kind. Coercion failure
// drops the argument with a diagnostic; it is not fatal for the command.
func (p parser) makeValue(spec ArgSpec, val string) (Value, bool) {
	switch spec.Kind {
	case KindString:
		return stringValue(spec.Name, val), true
	case KindInt:
		n, err := strconv.Atoi(val)
		if err != nil {
			p.log.Debug("dropping argument with invalid integer value", "arg", spec.Name, "value", val)
			return Value{}, false
		}
		return intValue(spec.Name, n), true
	case KindColor:
		c, parsed := colorparse.Parse(val)
		if !parsed {
			p.log.Debug("dropping argument with invalid color value", "arg", spec.Name, "value", val)
			return Value{}, false
		}
		return colorValue(spec.Name, c), true
	}
	// bool is handled before coercion and catalog validation forbids
	// none/bool defaults, so this spec is malformed
	p.log.Warn("argument spec has unsupported kind", "arg", spec.Name, "kind", spec.Kind.String())
	return Value{}, false
}

// cutToken splits text at the first space, skipping any spaces that
// follow the token.
func cutToken(s string) (token, rest string) {
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i+1:], " ")
}

// hasPrefixFold reports whether s starts with prefix, case-insensitively.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// parseBoolLiteral maps the accepted bool spellings; recognized is false
// for anything outside the two sets.
func parseBoolLiteral(s string) (value, recognized bool) {
	switch {
	case strings.EqualFold(s, "1") || strings.EqualFold(s, "true") || strings.EqualFold(s, "yes"):
		return true, true
	case strings.EqualFold(s, "0") || strings.EqualFold(s, "false") || strings.EqualFold(s, "no"):
		return false, true
	}
	return false, false
}
