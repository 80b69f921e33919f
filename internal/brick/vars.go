package brick

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// PromptFunc asks the user for the value of one variable.
type PromptFunc func(name string, v Variable) (string, error)

// ParseVarFlags turns "key=value" pairs into a map. Later pairs win.
func ParseVarFlags(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid variable %q, expected key=value", p)
		}
		out[key] = value
	}
	return out, nil
}

// MissingVarsError lists declared variables that got no value.
type MissingVarsError struct {
	Names []string
}

func (e *MissingVarsError) Error() string {
	return "Missing values for: " + strings.Join(e.Names, ", ") + "."
}

// ResolveVars builds the template data of b. Each declared variable takes
// its given value, else the prompt answer when prompt is non-nil, else its
// default. Variables left without a value are reported as a
// *MissingVarsError. Given values for undeclared names pass through as
// strings.
func (b *Brick) ResolveVars(given map[string]string, prompt PromptFunc) (map[string]any, error) {
	data := make(map[string]any, len(given)+len(b.Vars))
	for k, v := range given {
		data[k] = v
	}

	names := make([]string, 0, len(b.Vars))
	for name := range b.Vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var missing []string
	for _, name := range names {
		v := b.Vars[name]

		raw, ok := given[name]
		if !ok && prompt != nil {
			answer, err := prompt(name, v)
			if err != nil {
				return nil, err
			}
			raw, ok = answer, true
		}
		if !ok {
			if v.Default == nil {
				missing = append(missing, name)
				continue
			}
			raw = fmt.Sprint(v.Default)
		}

		value, err := convert(name, v.Type, raw)
		if err != nil {
			return nil, err
		}
		data[name] = value
	}

	if len(missing) > 0 {
		return nil, &MissingVarsError{Names: missing}
	}
	return data, nil
}

func convert(name, typ, raw string) (any, error) {
	switch typ {
	case TypeBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("variable %q must be true or false, got %q", name, raw)
		}
		return b, nil
	case TypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("variable %q must be a number, got %q", name, raw)
		}
		return n, nil
	default:
		return raw, nil
	}
}
