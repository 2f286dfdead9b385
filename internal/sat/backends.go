package sat

// Backends maps configuration names to reference solver constructors. The
// hybrid engine is not listed here because it is parameterized by study
// options; see NewHybridSolver.
var Backends = map[string]func() Solver{
	"gini":          NewGiniSolver,
	"kissat":        NewKissatSolver,
	"cadical":       NewCadicalSolver,
	"cryptominisat": NewCryptominisatSolver,
}
