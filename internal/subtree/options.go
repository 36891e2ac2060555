package subtree

// Option is a single named option for a subtree subcommand. Value is either
// a bool (flag present/absent) or a string payload.
type Option struct {
	Name  string
	Value any
}

// Flag creates a boolean option. It emits a token only when set is true.
func Flag(name string, set bool) Option {
	return Option{Name: name, Value: set}
}

// Value creates a string-valued option. It emits nothing when v is empty.
func Value(name, v string) Option {
	return Option{Name: name, Value: v}
}

// dash renders an option name in its flag form: one-character names get a
// single dash, longer names a double dash.
func dash(name string) string {
	if len(name) > 1 {
		return "--" + name
	}
	return "-" + name
}

// optionTokens serializes options into CLI tokens, preserving order.
// Falsy values (false, "") are skipped entirely. String values join long
// options with "=" (--annotate=foo) and follow short options as a separate
// token (-m msg).
func optionTokens(opts []Option) []string {
	var tokens []string
	for _, o := range opts {
		switch v := o.Value.(type) {
		case bool:
			if !v {
				continue
			}
			tokens = append(tokens, dash(o.Name))
		case string:
			if v == "" {
				continue
			}
			if len(o.Name) > 1 {
				tokens = append(tokens, dash(o.Name)+"="+v)
			} else {
				tokens = append(tokens, dash(o.Name), v)
			}
		}
	}
	return tokens
}
