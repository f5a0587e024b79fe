package command

var registry = map[string]Command{}

// Register adds a command (and its aliases) to the registry, applying any
// middlewares outermost-last.
func Register(cmd Command, middlewares ...Middleware) {
	for _, mw := range middlewares {
		cmd = mw(cmd)
	}
	registry[cmd.Name()] = cmd
	for _, a := range cmd.Aliases() {
		registry[a] = cmd
	}
}

// Get looks a command up by name or alias.
func Get(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// All returns every registered command exactly once.
func All() []Command {
	seen := map[string]bool{}
	var list []Command
	for _, cmd := range registry {
		if seen[cmd.Name()] {
			continue
		}
		list = append(list, cmd)
		seen[cmd.Name()] = true
	}
	return list
}
