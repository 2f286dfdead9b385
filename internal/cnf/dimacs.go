package cnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseDIMACS reads a CNF formula in the DIMACS format: optional "c" comment
// lines, a single "p cnf <vars> <clauses>" header, then clauses as
// whitespace-separated literals terminated by 0 (clauses may span lines).
// The body must match the header counts exactly; literals outside the
// declared range, an unterminated final clause and trailing data after the
// declared clauses are all *ParseError.
func ParseDIMACS(r io.Reader) (*Instance, error) {
	var (
		numVars    int
		numClauses int
		headerSeen bool
		clauses    [][]int
		current    []int
		lineNum    int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			if headerSeen {
				return nil, &ParseError{Line: lineNum, Msg: "duplicate problem header"}
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("invalid problem header %q", line)}
			}
			var err error
			if numVars, err = strconv.Atoi(fields[2]); err != nil || numVars <= 0 {
				return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("invalid variable count %q", fields[2])}
			}
			if numClauses, err = strconv.Atoi(fields[3]); err != nil || numClauses <= 0 {
				return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("invalid clause count %q", fields[3])}
			}
			headerSeen = true
			continue
		}
		if !headerSeen {
			return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("clause data %q before problem header", line)}
		}
		for _, field := range strings.Fields(line) {
			val, err := strconv.Atoi(field)
			if err != nil {
				return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("invalid literal %q", field)}
			}
			if val == 0 {
				if len(current) == 0 {
					return nil, &ParseError{Line: lineNum, Msg: "empty clause"}
				}
				if len(clauses) == numClauses {
					return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("more clauses than the %d declared in the header", numClauses)}
				}
				clauses = append(clauses, current)
				current = nil
				continue
			}
			if val > numVars || val < -numVars {
				return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("literal %d out of range for %d variables", val, numVars)}
			}
			current = append(current, val)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cnf: cannot read DIMACS input: %w", err)
	}
	if !headerSeen {
		return nil, &ParseError{Line: lineNum, Msg: "missing problem header"}
	}
	if len(current) > 0 {
		return nil, &ParseError{Line: lineNum, Msg: "unterminated clause at end of input"}
	}
	if len(clauses) != numClauses {
		return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("header declares %d clauses but input contains %d", numClauses, len(clauses))}
	}
	return New(clauses, numVars)
}

// ParseDIMACSFile parses the DIMACS CNF file at path.
func ParseDIMACSFile(path string) (*Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cnf: cannot open %v: %w", path, err)
	}
	defer file.Close()
	return ParseDIMACS(file)
}

// DIMACS serializes the instance back into the DIMACS-CNF string format.
func (inst *Instance) DIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", inst.numVars, len(inst.clauses))
	for _, clause := range inst.clauses {
		for _, lit := range clause {
			fmt.Fprintf(&builder, "%d ", lit.Int())
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
