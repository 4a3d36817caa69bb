package config

// Option describes one recognized option: its name and the default value
// whose shape doubles as the expected shape of anything assigned to it.
type Option struct {
	name string
	def  Value
}

// Name returns the option name.
func (o Option) Name() string { return o.name }

// Kind reports the shape the option accepts.
func (o Option) Kind() Kind { return o.def.Kind() }

// Default returns the value used when neither the command line nor the
// configuration file sets the option.
func (o Option) Default() Value { return o.def }

// Schema is the catalog of recognized options, supplied by the caller before
// any parsing begins. Declaration order is preserved so combining iterates
// deterministically.
type Schema struct {
	names   []string
	options map[string]Option
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{options: make(map[string]Option)}
}

// AddFlag registers a presence flag that takes no value.
func (s *Schema) AddFlag(name string, def bool) *Schema {
	return s.add(name, FlagValue(def))
}

// AddString registers an option taking exactly one value.
func (s *Schema) AddString(name, def string) *Schema {
	return s.add(name, StringValue(def))
}

// AddList registers an option that may be assigned multiple times,
// accumulating values in the order given.
func (s *Schema) AddList(name string, def ...string) *Schema {
	return s.add(name, ListValue(def...))
}

func (s *Schema) add(name string, def Value) *Schema {
	if _, ok := s.options[name]; !ok {
		s.names = append(s.names, name)
	}
	s.options[name] = Option{name: name, def: def}
	return s
}

// Option looks up a registered option by name.
func (s *Schema) Option(name string) (Option, bool) {
	opt, ok := s.options[name]
	return opt, ok
}

// Names returns option names in declaration order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of registered options.
func (s *Schema) Len() int { return len(s.names) }
