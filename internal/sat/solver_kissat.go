package sat

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
)

type kissatSolver struct{}

// NewKissatSolver returns a Solver backed by the kissat binary, used by the
// experiment harness as an external point of comparison.
func NewKissatSolver() Solver {
	return &kissatSolver{}
}

func (solver *kissatSolver) Solve(inst *cnf.Instance) (Solution, error) {
	dimacs := inst.DIMACS() // Transform the instance into DIMACS-CNF string format

	cmd := exec.Command(executablePath("kissat"), "-q", "--relaxed")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into kissat's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("an error occurred during kissat execution: %v : %v", err, stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return parseSolution(stdOut.String()), nil
}
