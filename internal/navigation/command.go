package navigation

import (
	"fmt"

	"github.com/sellonet/sellonet-web/internal/content"
)

// CommandName names one of the three page operations.
type CommandName string

const (
	CommandNavigateTo       CommandName = "navigate_to"
	CommandToggleMobileMenu CommandName = "toggle_mobile_menu"
	CommandSelectTechnology CommandName = "select_technology"
)

// Command is a click translated into a page operation. Arg is the section
// for navigate_to, the technology key for select_technology and ignored for
// toggle_mobile_menu.
type Command struct {
	Name CommandName `json:"command"`
	Arg  string      `json:"arg,omitempty"`
}

// NavigateTo builds a navigate_to command.
func NavigateTo(section content.Section) Command {
	return Command{Name: CommandNavigateTo, Arg: string(section)}
}

// ToggleMobileMenu builds a toggle_mobile_menu command.
func ToggleMobileMenu() Command {
	return Command{Name: CommandToggleMobileMenu}
}

// SelectTechnology builds a select_technology command.
func SelectTechnology(key string) Command {
	return Command{Name: CommandSelectTechnology, Arg: key}
}

// ParseCommand validates a command name received from a client.
func ParseCommand(name, arg string) (Command, error) {
	switch c := CommandName(name); c {
	case CommandNavigateTo, CommandToggleMobileMenu, CommandSelectTechnology:
		return Command{Name: c, Arg: arg}, nil
	default:
		return Command{}, fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
}

// Dispatch runs cmd against the navigator.
func (n *Navigator) Dispatch(cmd Command) error {
	switch cmd.Name {
	case CommandNavigateTo:
		n.NavigateTo(content.Section(cmd.Arg))
		return nil
	case CommandToggleMobileMenu:
		n.ToggleMobileMenu()
		return nil
	case CommandSelectTechnology:
		return n.SelectTechnology(cmd.Arg)
	default:
		return fmt.Errorf("%q: %w", cmd.Name, ErrUnknownCommand)
	}
}
