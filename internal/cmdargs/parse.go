package cmdargs

import (
	"fmt"
	"strconv"
	"strings"

	"slate/internal/timecode"
)

// Kind describes how an option's value token is parsed and validated.
type Kind int

const (
	// String accepts any value token.
	String Kind = iota
	// Float parses a floating point value with optional range bounds.
	Float
	// Int parses an integer value with optional range bounds.
	Int
	// Bool accepts exactly the literals "true" and "false".
	Bool
	// Duration parses a duration string into frames via timecode.
	Duration
	// Enum accepts one of a fixed set of lowercase values.
	Enum
	// Switch consumes no value token and simply records presence.
	Switch
)

// Option declares a single flag a command accepts. Long and Short are flag
// names without dashes; Short may be empty.
type Option struct {
	Long         string
	Short        string
	Kind         Kind
	Enum         []string
	Min          float64
	Max          float64
	HasMin       bool
	HasMax       bool
	ExclusiveMin bool
	Help         string
}

// Spec declares the full argument surface of one command.
type Spec struct {
	// Positional allows the first non-flag token to act as the target
	// entity id.
	Positional bool
	Options    []Option
}

// Values is the validated result of a parse. Lookups are by long name.
type Values struct {
	Positional string
	values     map[string]parsed
}

type parsed struct {
	text    string
	number  float64
	frames  int
	boolean bool
}

// Parse scans tokens left to right, resolving flags against the spec and
// validating each value as it is consumed. The first violation aborts the
// scan; no partially validated result is ever returned.
func (s Spec) Parse(args []string, fps int) (*Values, error) {
	out := &Values{values: make(map[string]parsed)}

	for i := 0; i < len(args); i++ {
		token := args[i]
		if !strings.HasPrefix(token, "-") {
			if s.Positional && out.Positional == "" {
				out.Positional = token
				continue
			}
			return nil, fmt.Errorf("unexpected argument %q", token)
		}

		opt, ok := s.lookup(strings.TrimLeft(token, "-"))
		if !ok {
			return nil, fmt.Errorf("unknown option %q", token)
		}
		if opt.Kind == Switch {
			out.values[opt.Long] = parsed{boolean: true}
			continue
		}

		i++
		if i >= len(args) {
			return nil, fmt.Errorf("missing value for --%s", opt.Long)
		}
		value, err := opt.validate(args[i], fps)
		if err != nil {
			return nil, err
		}
		out.values[opt.Long] = value
	}

	return out, nil
}

func (s Spec) lookup(name string) (Option, bool) {
	for _, opt := range s.Options {
		if name == opt.Long || (opt.Short != "" && name == opt.Short) {
			return opt, true
		}
	}
	return Option{}, false
}

func (o Option) validate(raw string, fps int) (parsed, error) {
	switch o.Kind {
	case String:
		return parsed{text: raw}, nil
	case Enum:
		normalized := strings.ToLower(strings.TrimSpace(raw))
		for _, allowed := range o.Enum {
			if normalized == allowed {
				return parsed{text: normalized}, nil
			}
		}
		return parsed{}, fmt.Errorf("--%s must be one of %s", o.Long, strings.Join(o.Enum, ", "))
	case Float:
		number, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return parsed{}, fmt.Errorf("--%s expects a number", o.Long)
		}
		if err := o.checkRange(number); err != nil {
			return parsed{}, err
		}
		return parsed{number: number}, nil
	case Int:
		number, err := strconv.Atoi(raw)
		if err != nil {
			return parsed{}, fmt.Errorf("--%s expects an integer", o.Long)
		}
		if err := o.checkRange(float64(number)); err != nil {
			return parsed{}, err
		}
		return parsed{number: float64(number), frames: number}, nil
	case Bool:
		switch raw {
		case "true":
			return parsed{boolean: true}, nil
		case "false":
			return parsed{boolean: false}, nil
		}
		return parsed{}, fmt.Errorf("--%s expects \"true\" or \"false\"", o.Long)
	case Duration:
		frames, ok := timecode.ParseDuration(raw, fps)
		if !ok {
			return parsed{}, fmt.Errorf("--%s is not a valid duration: %q", o.Long, raw)
		}
		return parsed{frames: frames}, nil
	default:
		return parsed{}, fmt.Errorf("--%s has an unsupported kind", o.Long)
	}
}

func (o Option) checkRange(number float64) error {
	if o.HasMin {
		if o.ExclusiveMin && number <= o.Min {
			return fmt.Errorf("--%s must be greater than %s", o.Long, trimFloat(o.Min))
		}
		if !o.ExclusiveMin && number < o.Min {
			return o.rangeError()
		}
	}
	if o.HasMax && number > o.Max {
		return o.rangeError()
	}
	return nil
}

func (o Option) rangeError() error {
	switch {
	case o.HasMin && o.HasMax:
		return fmt.Errorf("--%s must be between %s and %s", o.Long, trimFloat(o.Min), trimFloat(o.Max))
	case o.HasMin:
		return fmt.Errorf("--%s must be at least %s", o.Long, trimFloat(o.Min))
	default:
		return fmt.Errorf("--%s must be at most %s", o.Long, trimFloat(o.Max))
	}
}

func trimFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Has reports whether the option was supplied.
func (v *Values) Has(name string) bool {
	_, ok := v.values[name]
	return ok
}

// String returns a String or Enum option's value.
func (v *Values) String(name string) (string, bool) {
	p, ok := v.values[name]
	return p.text, ok
}

// Float returns a Float option's value.
func (v *Values) Float(name string) (float64, bool) {
	p, ok := v.values[name]
	return p.number, ok
}

// Int returns an Int option's value.
func (v *Values) Int(name string) (int, bool) {
	p, ok := v.values[name]
	return p.frames, ok
}

// Frames returns a Duration option's value in frames.
func (v *Values) Frames(name string) (int, bool) {
	p, ok := v.values[name]
	return p.frames, ok
}

// Bool returns a Bool option's value.
func (v *Values) Bool(name string) (bool, bool) {
	p, ok := v.values[name]
	return p.boolean, ok
}

// Switch reports whether a Switch option was supplied.
func (v *Values) Switch(name string) bool {
	p, ok := v.values[name]
	return ok && p.boolean
}
