package solve

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

type cmdFlags struct {
	problem int
	check   bool
	list    bool
	help    bool
}

func readCMDFlags(args []string, output io.Writer) (cmdFlags, error) {
	var (
		problem string
		check   bool
		list    bool
		help    bool
	)

	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&problem, "problem", "", "problem number to solve")
	fs.StringVar(&problem, "p", "", "problem number to solve")

	fs.BoolVar(&check, "check", false, "run sample cases instead of reading stdin")
	fs.BoolVar(&check, "c", false, "run sample cases instead of reading stdin")

	fs.BoolVar(&list, "list", false, "list solved problems")
	fs.BoolVar(&list, "l", false, "list solved problems")

	fs.BoolVar(&help, "help", false, "commands info")
	fs.BoolVar(&help, "h", false, "commands info")

	if err := fs.Parse(args); err != nil {
		return cmdFlags{}, fmt.Errorf("parse flags: %w", err)
	}

	if fs.NArg() > 0 {
		return cmdFlags{}, NewErrFlag(fmt.Sprintf("unexpected arguments: %v", fs.Args()))
	}

	if help {
		fs.PrintDefaults()

		return cmdFlags{
			help: true,
		}, nil
	}

	if list {
		return cmdFlags{
			list: true,
		}, nil
	}

	if problem == "" {
		if check {
			return cmdFlags{
				check: true,
			}, nil
		}

		return cmdFlags{}, ErrEmptyProblem{}
	}

	id, err := strconv.Atoi(problem)
	if err != nil || id <= 0 {
		return cmdFlags{}, NewErrFlag(fmt.Sprintf("problem number %q is not a positive integer", problem))
	}

	return cmdFlags{
		problem: id,
		check:   check,
	}, nil
}
