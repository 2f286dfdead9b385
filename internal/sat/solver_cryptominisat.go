package sat

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
)

type cryptominisatSolver struct{}

// NewCryptominisatSolver returns a Solver backed by the cryptominisat binary.
func NewCryptominisatSolver() Solver {
	return &cryptominisatSolver{}
}

func (solver *cryptominisatSolver) Solve(inst *cnf.Instance) (Solution, error) {
	dimacs := inst.DIMACS() // Transform the instance into DIMACS-CNF string format

	cmd := exec.Command(executablePath("cryptominisat"), "--verb", "0")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into cryptominisat's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("an error occurred during cryptominisat execution: %v : %v", err, stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return parseSolution(stdOut.String()), nil
}
