package app

import (
	"errors"
	"strings"
)

type Verb string

const (
	VerbAddMember   Verb = "addmember"
	VerbMarkPaid    Verb = "markpaid"
	VerbReport      Verb = "report"
	VerbAddMonth    Verb = "addmonth"
	VerbInitDB      Verb = "initdb"
	VerbListMembers Verb = "listmembers"
	VerbHelp        Verb = "help"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
)

// BadArgsError means the verb was recognized but its required arguments
// were missing.
type BadArgsError struct {
	Verb Verb
}

func (e *BadArgsError) Error() string { return "bad arguments for " + string(e.Verb) }

// Usage is the reply sent back for a malformed command.
func (e *BadArgsError) Usage() string { return verbSpecs[e.Verb].usage }

type verbSpec struct {
	minArgs  int
	mutating bool
	usage    string
}

var verbSpecs = map[Verb]verbSpec{
	VerbAddMember: {minArgs: 2, mutating: true,
		usage: "Usage: AddMember <Name> <Category> [Amount]\nCategories: Parents, GenMillennial, GenAlpha"},
	VerbMarkPaid: {minArgs: 2, mutating: true,
		usage: "Usage: MarkPaid <Name> <Month> [Amount]"},
	VerbReport: {minArgs: 1,
		usage: "Usage: Report <Month>"},
	VerbAddMonth: {minArgs: 1, mutating: true,
		usage: "Usage: AddMonth <MonthName>"},
	VerbInitDB:      {mutating: true},
	VerbListMembers: {},
	VerbHelp:        {},
}

// Parse splits a raw command on whitespace. Token 0 is matched
// case-insensitively against the verb set; the rest are returned untouched
// for the verb handler to interpret. Parsing has no side effects.
func Parse(raw string) (Verb, []string, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return "", nil, ErrEmptyCommand
	}
	verb := Verb(strings.ToLower(tokens[0]))
	spec, ok := verbSpecs[verb]
	if !ok {
		return "", nil, ErrUnknownCommand
	}
	args := tokens[1:]
	if len(args) < spec.minArgs {
		return verb, args, &BadArgsError{Verb: verb}
	}
	return verb, args, nil
}

// IsMutating reports whether the verb changes ledger state and therefore
// requires an admin sender.
func IsMutating(v Verb) bool { return verbSpecs[v].mutating }
