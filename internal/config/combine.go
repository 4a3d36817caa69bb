package config

// ProfileOption is the schema entry whose command-line value names the
// profiles applied on top of the combined result.
const ProfileOption = "profile"

// Combine merges explicit command-line values, a validated file, and the
// schema defaults into the final configuration. Precedence, highest first:
// explicit command-line value, selected profile value, file top-level value,
// schema default.
//
// cli must contain only values the user explicitly supplied; presence in the
// map is what lets profile overrides lose to the command line. Selected
// profile names come from the cli "profile" entry and are applied in order;
// naming a profile the file does not define is the one failure mode here.
func Combine(cli Values, file *File, schema *Schema) (Values, error) {
	if file == nil {
		file = &File{}
	}

	result := make(Values, schema.Len())
	for _, name := range schema.Names() {
		if value, ok := cli[name]; ok {
			result[name] = value
		} else if value, ok := file.Options[name]; ok {
			result[name] = value
		} else {
			opt, _ := schema.Option(name)
			result[name] = opt.Default()
		}
	}

	for _, profileName := range cli[ProfileOption].List() {
		profile, ok := file.Profiles[profileName]
		if !ok {
			return nil, &Error{Name: profileName, Reason: ReasonNoSuchProfile}
		}
		for name, value := range profile {
			if _, ok := cli[name]; ok {
				// Explicit command-line input always wins over profiles.
				continue
			}
			result[name] = value
		}
	}
	return result, nil
}
