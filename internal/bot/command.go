package bot

// Command is the closed set of text commands the bot understands. Routing is
// an exhaustive switch over this set so an unhandled command is a visible
// fallthrough, not a silent no-op.
type Command int

const (
	CmdUnknown Command = iota
	CmdStart
	CmdJobs
	CmdSearch
	CmdProfile
	CmdAdmin
	CmdHelp
)

// ParseCommand maps a command token (without the leading slash) to a Command.
func ParseCommand(name string) Command {
	switch name {
	case "start":
		return CmdStart
	case "jobs":
		return CmdJobs
	case "search":
		return CmdSearch
	case "profile":
		return CmdProfile
	case "admin":
		return CmdAdmin
	case "help":
		return CmdHelp
	default:
		return CmdUnknown
	}
}

// RequiresAdmin reports whether the command is gated by the allow-list.
func (c Command) RequiresAdmin() bool {
	return c == CmdAdmin
}
