package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/uniplot/pkg/style"
)

// runList prints the registered parsers in detection order and the
// available styles.
func (c *CLI) runList(cmd *cobra.Command) error {
	reg, user, err := c.registry()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	printTitle(w, fmt.Sprintf("Parsers (%d)", reg.Len()))
	for _, e := range reg.All() {
		origin := "builtin"
		if user[e.Name] {
			origin = "plugin"
		}
		if _, err := e.New(); err != nil {
			printEntry(w, e.Name, origin, StyleWarning.Render("unavailable: "+firstLine(err.Error())))
			continue
		}
		printEntry(w, e.Name, origin, "")
	}

	printNewline(w)
	printTitle(w, "Styles")
	dir := styleDir()
	userStyles := style.UserNames(dir)
	shadowed := make(map[string]bool, len(userStyles))
	for _, name := range userStyles {
		shadowed[name] = true
		printEntry(w, name, "user", "")
	}
	for _, name := range style.BuiltinNames() {
		note := ""
		if shadowed[name] {
			note = "overridden"
		}
		printEntry(w, name, "builtin", note)
	}
	if dir != "" {
		printNewline(w)
		printKeyValue(w, "styles", dir)
		printKeyValue(w, "parsers", parserDir())
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
