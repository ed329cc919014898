package main

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tasconf/tasconf/config"
	"github.com/tasconf/tasconf/status"
)

var (
	showFormat string
	cmndGroup  bool
	cmndSort   bool
	cmndIndent int
)

func init() {
	rootCmd.AddCommand(newShowCmd())
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration as JSON or as console commands",
		Long: `Show prints the configuration from the source given by --device or
--file without writing anything.

The 'json' format prints the same document a JSON backup would contain. The
'cmnd' format prints the console commands that would reproduce the
configuration, optionally grouped under their category headers and sorted
with numeric-aware ordering.

Example:
  tasconf show -f config.dmp
  tasconf show -d sonoff-4281 --format cmnd --cmnd-group -g wifi,mqtt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow()
		},
	}
	cmd.Flags().StringVar(&showFormat, "format", "json", "output format: json or cmnd")
	cmd.Flags().BoolVar(&cmndGroup, "cmnd-group", false, "group commands under '# Category:' headers")
	cmd.Flags().BoolVar(&cmndSort, "cmnd-sort", false, "sort commands with numeric-aware ordering")
	cmd.Flags().IntVar(&cmndIndent, "cmnd-indent", 2, "indent width for grouped command output")
	return cmd
}

func runShow() error {
	pol := policy()
	img, err := loadImage(pol)
	if err != nil {
		return err
	}

	switch strings.ToLower(showFormat) {
	case "json":
		content, err := config.RenderJSON(img.Map(pol), jsonIndent)
		if err != nil {
			return status.Errorf(status.InternalError, "%v", err)
		}
		printInfo("%s\n", content)
		return nil
	case "cmnd":
		printCommands(img.Commands(pol), img.Info.Entry.Fields.Groups())
		return nil
	}
	return status.Errorf(status.ArgumentError, "unknown output format '%s'", showFormat)
}

func printCommands(cmnds map[string][]string, groups []string) {
	emit := func(lines []string, indent int) {
		if cmndSort {
			lines = append([]string(nil), lines...)
			sort.SliceStable(lines, func(i, j int) bool {
				return numericLess(lines[i], lines[j])
			})
		}
		for _, line := range lines {
			printInfo("%s%s\n", strings.Repeat(" ", indent), line)
		}
	}

	if cmndGroup {
		for _, group := range groups {
			lines, ok := cmnds[group]
			if !ok {
				continue
			}
			printInfo("\n# %s:\n", group)
			emit(lines, cmndIndent)
		}
		return
	}

	var all []string
	for _, group := range groups {
		all = append(all, cmnds[group]...)
	}
	emit(all, 0)
}

// numericLess orders strings with embedded digit runs compared as numbers,
// so Rule2 sorts before Rule10.
func numericLess(a, b string) bool {
	for a != "" && b != "" {
		ra, na := chunk(a)
		rb, nb := chunk(b)
		if ra != rb {
			if isDigits(ra) && isDigits(rb) {
				if len(ra) != len(rb) {
					// Equal-value chunks with leading zeros differ in length.
					va := strings.TrimLeft(ra, "0")
					vb := strings.TrimLeft(rb, "0")
					if va != vb {
						return numLess(va, vb)
					}
					return len(ra) < len(rb)
				}
				return ra < rb
			}
			return ra < rb
		}
		a, b = a[na:], b[nb:]
	}
	return len(a) < len(b)
}

// chunk returns the leading run of digits or non-digits and its length.
func chunk(s string) (string, int) {
	digits := s[0] >= '0' && s[0] <= '9'
	for i := 1; i < len(s); i++ {
		if (s[i] >= '0' && s[i] <= '9') != digits {
			return s[:i], i
		}
	}
	return s, len(s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func numLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
