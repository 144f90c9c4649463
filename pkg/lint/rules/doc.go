// Package rules contains the built-in spacing rules for spacelint.
//
// Each rule is a thin policy object: it selects the tokens bounding a
// construct, then delegates the actual whitespace analysis and correction to
// the lint package's surrounding-space helpers. Rules register themselves
// into lint.DefaultRegistry via init().
package rules
