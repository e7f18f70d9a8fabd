// Package dialect ships ready-made keyword sets for the tokenizer, one
// per SQL flavor. The sets decide which words classify as reserved,
// toplevel, newline-triggering or function tokens; matching is always
// case-insensitive, so the lists hold the conventional uppercase form.
//
// The returned Config values share the package's backing arrays and
// must be treated as read-only.
package dialect

import (
	"sort"
	"strings"

	"github.com/robomillo/sql-formatter/tokenizer"
)

var registry = map[string]func() tokenizer.Config{
	"standard": Standard,
	"n1ql":     N1QL,
	"db2":      DB2,
	"plsql":    PLSQL,
}

// ByName looks up a dialect by its registry name, case-insensitively.
func ByName(name string) (tokenizer.Config, bool) {
	build, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return tokenizer.Config{}, false
	}
	return build(), true
}

// Names lists the registered dialect names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
