package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jehanzebchaudhry/stoptime/internal/config"
	"github.com/jehanzebchaudhry/stoptime/internal/galerkin"
	"github.com/jehanzebchaudhry/stoptime/internal/integrators"
	"github.com/jehanzebchaudhry/stoptime/internal/problems"
	"github.com/jehanzebchaudhry/stoptime/internal/rootfind"
	"github.com/jehanzebchaudhry/stoptime/internal/viz"
)

var (
	t0            float64
	t1            float64
	steps         int
	degree        int
	y0            float64
	target        float64
	adjointDegree int
	adjointSteps  int
	terminalTime  float64
	configFile    string
	checkTrap     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stoptime",
		Short: "cG(q) ODE solver with goal-oriented stopping-time error estimation",
	}

	solveCmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "solve a linear ODE with cG(q)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	addMeshFlags(solveCmd)
	solveCmd.Flags().BoolVar(&checkTrap, "check", false, "cross-check nodes against the trapezoid marcher")

	stopCmd := &cobra.Command{
		Use:   "stoptime [problem]",
		Short: "locate the threshold crossing and estimate its error",
		Args:  cobra.ExactArgs(1),
		RunE:  runStopTime,
	}
	addMeshFlags(stopCmd)
	stopCmd.Flags().Float64Var(&target, "target", config.DefaultTarget, "threshold value")
	stopCmd.Flags().IntVar(&adjointDegree, "adjoint-degree", config.DefaultDegree, "adjoint polynomial degree")
	stopCmd.Flags().IntVar(&adjointSteps, "adjoint-steps", 0, "adjoint subintervals (0: truncated forward mesh)")

	estimateCmd := &cobra.Command{
		Use:   "estimate [problem]",
		Short: "estimate the solution error at a terminal time",
		Args:  cobra.ExactArgs(1),
		RunE:  runEstimate,
	}
	addMeshFlags(estimateCmd)
	estimateCmd.Flags().Float64Var(&terminalTime, "at", 0, "terminal time of interest (0: mesh end)")
	estimateCmd.Flags().IntVar(&adjointDegree, "adjoint-degree", config.DefaultDegree, "adjoint polynomial degree")

	problemsCmd := &cobra.Command{
		Use:   "problems",
		Short: "list available problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := problems.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, name := range registry.List() {
				p, _ := registry.Get(name)
				fmt.Fprintf(w, "%s\t%s\ty0=%g\n", p.Name, p.Description, p.Y0)
			}
			return w.Flush()
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "animated sweep of the solution and its crossing",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addMeshFlags(liveCmd)
	liveCmd.Flags().Float64Var(&target, "target", config.DefaultTarget, "threshold value")

	rootCmd.AddCommand(solveCmd, stopCmd, estimateCmd, problemsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addMeshFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&t0, "t0", config.DefaultT0, "mesh start")
	cmd.Flags().Float64Var(&t1, "t1", config.DefaultT1, "mesh end")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of subintervals")
	cmd.Flags().IntVar(&degree, "degree", config.DefaultDegree, "cG polynomial degree")
	cmd.Flags().Float64Var(&y0, "y0", 0, "initial value (0: problem default)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
}

// loadRun resolves the config file, flags, and problem registry into a
// ready-to-solve setup. CLI flags override config file values.
func loadRun(cmd *cobra.Command, name string) (problems.Problem, *config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return problems.Problem{}, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if !cmd.Flags().Changed("t0") && configFile != "" {
		t0 = cfg.T0
	}
	if !cmd.Flags().Changed("t1") && configFile != "" {
		t1 = cfg.T1
	}
	if !cmd.Flags().Changed("steps") && configFile != "" {
		steps = cfg.Steps
	}
	if !cmd.Flags().Changed("degree") && configFile != "" {
		degree = cfg.Degree
	}
	if f := cmd.Flags().Lookup("target"); f != nil && !f.Changed && configFile != "" {
		target = cfg.Target
	}
	if f := cmd.Flags().Lookup("adjoint-degree"); f != nil && !f.Changed && configFile != "" {
		adjointDegree = cfg.AdjointDegree
	}
	if f := cmd.Flags().Lookup("adjoint-steps"); f != nil && !f.Changed && configFile != "" {
		adjointSteps = cfg.AdjointSteps
	}
	cfg.T0, cfg.T1, cfg.Steps, cfg.Degree = t0, t1, steps, degree

	registry := problems.NewRegistry()
	prob, err := registry.Get(name)
	if err != nil {
		return problems.Problem{}, nil, err
	}
	if cmd.Flags().Changed("y0") {
		prob.Y0 = y0
	} else if cfg.Y0 != nil {
		prob.Y0 = *cfg.Y0
	}
	return prob, cfg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	prob, cfg, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}

	sol, err := galerkin.SolveLinear(prob.Y0, prob.F, cfg.Mesh(), cfg.Degree)
	if err != nil {
		return err
	}

	fmt.Println(viz.HeaderStyle.Render(fmt.Sprintf("cG(%d) solution: %s", cfg.Degree, prob.Name)))
	fmt.Println(viz.Trajectory(sol, 64, 14, fmt.Sprintf("y(t) on [%g, %g]", cfg.T0, cfg.T1)))

	var trap []float64
	if checkTrap {
		trap, err = integrators.SolveTrapezoid(prob.Y0, sol.Mesh, func(t, y float64) float64 {
			return prob.F(t) * y
		})
		if err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	header := "node\tt\ty"
	if prob.HasExact() {
		header += "\texact\terror"
	}
	if trap != nil {
		header += "\ttrapezoid"
	}
	fmt.Fprintln(w, header)
	for i := 0; i < len(sol.Mesh); i++ {
		line := fmt.Sprintf("%d\t%s\t%s", i, viz.FormatFloat(sol.Mesh[i]), viz.FormatFloat(sol.NodeValue(i)))
		if prob.HasExact() {
			exact := prob.Exact(sol.Mesh[i])
			line += fmt.Sprintf("\t%s\t%.3e", viz.FormatFloat(exact), sol.NodeValue(i)-exact)
		}
		if trap != nil {
			line += "\t" + viz.FormatFloat(trap[i])
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func runStopTime(cmd *cobra.Command, args []string) error {
	prob, cfg, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}

	sol, err := galerkin.SolveLinear(prob.Y0, prob.F, cfg.Mesh(), cfg.Degree)
	if err != nil {
		return err
	}

	crossing, err := galerkin.LocateCrossing(sol, target)
	if err != nil {
		return err
	}

	adjointMesh, err := adjointMeshFor(sol.Mesh, crossing.Time)
	if err != nil {
		return err
	}
	phi, err := galerkin.SolveAdjoint(prob.F, adjointMesh, adjointDegree)
	if err != nil {
		return err
	}

	est, err := galerkin.EstimateError(sol, phi, prob.F)
	if err != nil {
		return err
	}

	rows := [][2]string{
		{"problem", prob.Name},
		{"stopping time", viz.FormatFloat(crossing.Time)},
		{"fraction s", viz.FormatFloat(crossing.Fraction)},
		{"window", fmt.Sprintf("t[%d]=%g < t* < t[%d]=%g", crossing.First.Index, crossing.First.Time, crossing.Second.Index, crossing.Second.Time)},
		{"est. error", fmt.Sprintf("%.6e", est.Total)},
	}
	if prob.HasExact() {
		trueTime, err := rootfind.Solve(func(t float64) float64 {
			return prob.Exact(t) - target
		}, crossing.Time, 1e-12)
		if err == nil {
			rows = append(rows,
				[2]string{"exact time", viz.FormatFloat(trueTime)},
				[2]string{"time offset", fmt.Sprintf("%.6e", crossing.Time-trueTime)})
		}
	}

	fmt.Println(viz.HeaderStyle.Render("numerical stopping time"))
	fmt.Print(viz.Summary(rows))
	fmt.Println(viz.Subtle.Render("local errors  " + viz.Sparkline(absValues(est.Local))))
	return nil
}

func runEstimate(cmd *cobra.Command, args []string) error {
	prob, cfg, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}

	sol, err := galerkin.SolveLinear(prob.Y0, prob.F, cfg.Mesh(), cfg.Degree)
	if err != nil {
		return err
	}

	T := terminalTime
	if T == 0 {
		T = sol.Mesh.End()
	}
	adjointMesh := sol.Mesh
	if T != sol.Mesh.End() {
		adjointMesh, err = sol.Mesh.TruncateAt(T)
		if err != nil {
			return err
		}
	}
	phi, err := galerkin.SolveAdjoint(prob.F, adjointMesh, adjointDegree)
	if err != nil {
		return err
	}

	est, err := galerkin.EstimateError(sol, phi, prob.F)
	if err != nil {
		return err
	}

	rows := [][2]string{
		{"problem", prob.Name},
		{"terminal time", viz.FormatFloat(T)},
		{"est. error", fmt.Sprintf("%.6e", est.Total)},
	}
	if prob.HasExact() {
		v, verr := sol.At(T)
		if verr == nil {
			rows = append(rows, [2]string{"true error", fmt.Sprintf("%.6e", prob.Exact(T)-v)})
		}
	}
	fmt.Println(viz.HeaderStyle.Render("goal-oriented error estimate"))
	fmt.Print(viz.Summary(rows))
	fmt.Println(viz.LocalErrors(est, 64, 10))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	prob, cfg, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}

	sol, err := galerkin.SolveLinear(prob.Y0, prob.F, cfg.Mesh(), cfg.Degree)
	if err != nil {
		return err
	}

	// A missing crossing is fine here; the sweep just runs to the end.
	crossing, _ := galerkin.LocateCrossing(sol, target)
	return viz.RunLive(sol, crossing, target)
}

// adjointMeshFor builds the dual mesh ending exactly at the stopping
// time: the truncated forward mesh by default, or a fresh uniform mesh
// when --adjoint-steps is set.
func adjointMeshFor(forward galerkin.Mesh, T float64) (galerkin.Mesh, error) {
	if adjointSteps > 0 {
		return galerkin.Uniform(forward.Start(), T, adjointSteps), nil
	}
	return forward.TruncateAt(T)
}

func absValues(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = math.Abs(v)
	}
	return out
}
