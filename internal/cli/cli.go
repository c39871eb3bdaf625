package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Status *StatusCommand
	Report *ReportCommand
	Search *SearchCommand
	Serve  *ServeCommand
	Gen    *GenCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "instalens"
	parser.LongDescription = "In-memory analytics and search over a CSV social-network dataset."

	cmds := &commands{
		Status: &StatusCommand{globals: &globals, version: version},
		Report: &ReportCommand{globals: &globals, version: version},
		Search: &SearchCommand{globals: &globals, version: version},
		Serve:  &ServeCommand{globals: &globals, version: version},
		Gen:    &GenCommand{globals: &globals, version: version},
	}

	parser.AddCommand("status", "Show dataset summary", "Load the dataset and show per-entity counts, date coverage, and top tags.", cmds.Status)
	parser.AddCommand("report", "Run one aggregation", "Run one aggregation over the dataset and print the result. See 'report' with no kind for the list of kinds.", cmds.Report)
	parser.AddCommand("search", "Filtered search over one entity", "Search users, photos, comments, or tags with composable filters.", cmds.Search)
	parser.AddCommand("serve", "Serve the dashboard JSON API", "Load the dataset once and serve the aggregations and searches over HTTP.", cmds.Serve)
	parser.AddCommand("gen", "Generate a synthetic dataset", "Write a synthetic seven-file CSV dataset for demos and tests.", cmds.Gen)

	return parser, &globals, cmds
}

// Run is the main entry point for the instalens CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("instalens %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
