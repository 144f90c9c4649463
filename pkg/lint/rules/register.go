package rules

import "github.com/yaklabco/spacelint/pkg/lint"

//nolint:gochecknoinits // Importing this package registers the built-in rules
func init() {
	RegisterBuiltins(lint.DefaultRegistry())
}

// RegisterBuiltins registers every built-in rule into the given registry.
func RegisterBuiltins(reg *lint.Registry) {
	reg.Register(NewSpaceInsideParensRule())
	reg.Register(NewSpaceInsideBracketsRule())
	reg.Register(NewSpaceInsideBracesRule())
	reg.Register(NewSpaceAroundOperatorsRule())
	reg.Register(NewSpaceAfterCommaRule())
}
