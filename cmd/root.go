package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpusched/cpusched/api"
	"github.com/cpusched/cpusched/sim"
	"github.com/cpusched/cpusched/sim/trace"
	"github.com/cpusched/cpusched/sim/workload"
)

var (
	// CLI flags for the run command
	policy       string // Scheduling policy to simulate
	quantum      int64  // Round Robin time quantum
	workloadFile string // Process-set file (.yaml, .json, or .csv)
	format       string // Output format (table or json)
	logLevel     string // Log verbosity level

	// CLI flags for synthetic workload generation, used when no file is given
	seed        int64 // Seed for random process generation
	procs       int   // Number of generated processes
	arrivalMax  int64 // Max generated arrival time
	burstMin    int64 // Min generated burst time
	burstMax    int64 // Max generated burst time
	priorityMin int   // Min generated priority (lower = more urgent)
	priorityMax int   // Max generated priority
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cpusched",
	Short: "Discrete-time simulator for classical CPU scheduling algorithms",
}

// runCmd executes one policy over a process set and reports metrics and the
// execution timeline
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy over a process set",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !sim.IsValidPolicy(policy) {
			logrus.Fatalf("Unknown policy %q (valid: %v)", policy, sim.Policies())
		}

		specs, err := loadSpecs()
		if err != nil {
			logrus.Fatalf("Unable to load process set: %v", err)
		}

		eng, err := workload.Build(specs)
		if err != nil {
			logrus.Fatalf("Unable to admit process set: %v", err)
		}

		logrus.Infof("Starting %s run with %d processes", policy, len(eng.Processes))
		if err := eng.Run(sim.Policy(policy), quantum); err != nil {
			logrus.Fatalf("Run failed: %v", err)
		}

		printResult(eng)
	},
}

// loadSpecs reads the workload file when given, otherwise generates a
// synthetic process set from the generator flags.
func loadSpecs() ([]workload.ProcessSpec, error) {
	if workloadFile != "" {
		return workload.Load(workloadFile)
	}
	return workload.Generate(workload.GeneratorConfig{
		Seed:        seed,
		Count:       procs,
		ArrivalMax:  arrivalMax,
		BurstMin:    burstMin,
		BurstMax:    burstMax,
		PriorityMin: priorityMin,
		PriorityMax: priorityMax,
	})
}

func printResult(eng *sim.Engine) {
	if format == "json" {
		var q int64
		if sim.Policy(policy) == sim.PolicyRoundRobin {
			q = quantum
		}
		resp := api.BuildResponse(eng, sim.Policy(policy), q)
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			logrus.Fatalf("Unable to encode result: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Println("PID  Arrival  Burst  Prio  Start  Complete  Wait  Turnaround  Response")
	for _, p := range eng.Processes {
		fmt.Printf("%-5d%-9d%-7d%-6d%-7d%-10d%-6d%-12d%d\n",
			p.PID, p.ArrivalTime, p.BurstTime, p.Priority,
			p.StartTime, p.CompletionTime, p.WaitingTime, p.TurnaroundTime, p.ResponseTime)
	}
	fmt.Println()
	fmt.Println(trace.Gantt(eng.Timeline.Slices()))
	fmt.Println()
	if m, ok := eng.Summarize(); ok {
		m.Print()
	} else {
		fmt.Println("No completed processes: no data.")
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&policy, "policy", "fifo", "Scheduling policy (fifo, sjf, sjf-np, rr, priority, priority-np)")
	runCmd.Flags().Int64Var(&quantum, "quantum", sim.DefaultQuantum, "Round Robin time quantum (ticks)")
	runCmd.Flags().StringVar(&workloadFile, "workload", "", "Process-set file (.yaml, .json, or .csv); omit to generate synthetically")
	runCmd.Flags().StringVar(&format, "format", "table", "Output format (table, json)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// synthetic workload generation
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random process generation")
	runCmd.Flags().IntVar(&procs, "procs", 5, "Number of generated processes")
	runCmd.Flags().Int64Var(&arrivalMax, "arrival-max", 10, "Max generated arrival time")
	runCmd.Flags().Int64Var(&burstMin, "burst-min", 1, "Min generated burst time")
	runCmd.Flags().Int64Var(&burstMax, "burst-max", 10, "Max generated burst time")
	runCmd.Flags().IntVar(&priorityMin, "priority-min", 0, "Min generated priority (lower value = higher priority)")
	runCmd.Flags().IntVar(&priorityMax, "priority-max", 9, "Max generated priority")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
