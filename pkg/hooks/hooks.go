// Package hooks provides the lifecycle hook execution engine.
//
// Hooks run at six named points (before/after x create/merge/remove).
// A hook value is either a Go function, a shell command, or an ordered
// sequence mixing both. Plugins contribute hooks in a user-ordered list;
// an inline hook from the configuration file runs after all plugins.
//
// Hook failures are always advisory: they are logged with a label
// identifying the offending plugin (or "inline") and never abort the
// workflow that triggered them.
package hooks

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Name identifies a lifecycle event at which hooks run.
type Name string

// The closed set of lifecycle events.
const (
	BeforeCreate Name = "beforeCreate"
	AfterCreate  Name = "afterCreate"
	BeforeMerge  Name = "beforeMerge"
	AfterMerge   Name = "afterMerge"
	BeforeRemove Name = "beforeRemove"
	AfterRemove  Name = "afterRemove"
)

// Names lists all valid lifecycle events.
var Names = []Name{BeforeCreate, AfterCreate, BeforeMerge, AfterMerge, BeforeRemove, AfterRemove}

// Valid reports whether n is one of the known lifecycle events.
func (n Name) Valid() bool {
	for _, known := range Names {
		if n == known {
			return true
		}
	}
	return false
}

// Func is a hook implemented as a Go function.
type Func func(ctx Context) error

// Map is a partial mapping from lifecycle event to hook value.
// Looking up an absent event is a no-op, not an error.
type Map map[Name]Value

// Plugin contributes hooks to lifecycle events. The name is used only
// for diagnostics; uniqueness is not enforced. Plugins are supplied in
// a user-ordered list and run in exactly that order.
type Plugin struct {
	Name  string
	Hooks Map
}

type valueKind int

const (
	valueNone valueKind = iota
	valueFunc
	valueCommand
	valueSequence
)

// Value is a single hook: a function, a shell command, or an ordered
// sequence of either. Within a sequence the first failing element aborts
// the remainder of that sequence only; the failure is reported once for
// the whole value.
type Value struct {
	kind     valueKind
	fn       Func
	command  string
	elements []Value
}

// Function wraps a Go function as a hook value.
func Function(fn Func) Value {
	return Value{kind: valueFunc, fn: fn}
}

// Command wraps a shell command as a hook value.
func Command(command string) Value {
	return Value{kind: valueCommand, command: command}
}

// Sequence wraps an ordered list of hook values.
func Sequence(elements ...Value) Value {
	return Value{kind: valueSequence, elements: elements}
}

// IsZero reports whether the value holds no hook.
func (v Value) IsZero() bool {
	return v.kind == valueNone
}

// UnmarshalYAML decodes a hook value from configuration: a scalar is a
// single shell command, a sequence is an ordered list of shell commands.
// Function hooks cannot come from configuration files.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var command string
		if err := node.Decode(&command); err != nil {
			return err
		}
		*v = Command(command)
		return nil
	case yaml.SequenceNode:
		var commands []string
		if err := node.Decode(&commands); err != nil {
			return err
		}
		elements := make([]Value, 0, len(commands))
		for _, command := range commands {
			elements = append(elements, Command(command))
		}
		*v = Sequence(elements...)
		return nil
	default:
		return fmt.Errorf("%w: expected a command string or a list of command strings", ErrInvalidHookValue)
	}
}
