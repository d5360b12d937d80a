// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals.
// "-" (stdin) is passed through untouched.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}

// Inputs merges --input values and positionals, expands globs, and falls
// back to stdin when nothing was given. Stdin may appear at most once.
func Inputs(flagInputs, posArgs []string) ([]string, error) {
	all := append(append([]string(nil), flagInputs...), posArgs...)
	out, err := ExpandPositionals(all)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return []string{"-"}, nil
	}
	stdin := 0
	for _, p := range out {
		if p == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, fmt.Errorf("stdin ('-') given %d times", stdin)
	}
	return out, nil
}
