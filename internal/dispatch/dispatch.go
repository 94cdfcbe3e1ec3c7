package dispatch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raphi011/clx/internal/cmd"
)

// Dispatcher submits and manages jobs via the q binary.
type Dispatcher struct {
	bin string
}

// New creates a dispatcher for the given q binary (name or path).
func New(bin string) *Dispatcher {
	if bin == "" {
		bin = "q"
	}
	return &Dispatcher{bin: bin}
}

// StartOptions are the resource requests for a job submission.
type StartOptions struct {
	Script           string  // script to run (required)
	TimeSeconds      float64 // requested computation time
	MemoryBytes      float64 // requested memory
	CPUs             int
	GPUs             int
	Priority         int  // higher is more important
	ShareWorkingPath bool // run directly in the script directory
}

// StartResult is the JSON answer of a submission.
type StartResult struct {
	Raw    string `json:"raw"`
	Handle string `json:"handle,omitempty"`
}

// ActionResult is the JSON answer of kill/cleanup.
type ActionResult struct {
	Handle string `json:"handle"`
	Raw    string `json:"raw"`
}

// InfoResult is the JSON answer of an info query.
type InfoResult struct {
	Raw   string    `json:"raw"`
	Infos []JobInfo `json:"infos"`
}

// Start submits a script and returns the parsed job handle.
func (d *Dispatcher) Start(ctx context.Context, opts StartOptions) (StartResult, error) {
	args := startArgs(opts)
	out, err := cmd.OutputContext(ctx, "", d.bin, args...)
	if err != nil {
		return StartResult{}, fmt.Errorf("q start: %w", err)
	}

	raw := string(out)
	return StartResult{
		Raw:    raw,
		Handle: parseHandle(raw),
	}, nil
}

// Info queries job state. With no handles, all jobs are listed.
func (d *Dispatcher) Info(ctx context.Context, handles []string) (InfoResult, error) {
	args := []string{"-list"}
	args = append(args, handles...)
	args = append(args, "-tabs")

	out, err := cmd.OutputContext(ctx, "", d.bin, args...)
	if err != nil {
		return InfoResult{}, fmt.Errorf("q info: %w", err)
	}

	raw := string(out)
	return InfoResult{
		Raw:   raw,
		Infos: parseInfoTable(raw),
	}, nil
}

// Kill asks q to stop a job.
func (d *Dispatcher) Kill(ctx context.Context, handle string) (ActionResult, error) {
	out, err := cmd.OutputContext(ctx, "", d.bin, "-kill", handle)
	if err != nil {
		return ActionResult{}, fmt.Errorf("q kill: %w", err)
	}
	return ActionResult{Handle: handle, Raw: string(out)}, nil
}

// Cleanup removes a finished job from the queue.
func (d *Dispatcher) Cleanup(ctx context.Context, handle string) (ActionResult, error) {
	out, err := cmd.OutputContext(ctx, "", d.bin, "-del", handle)
	if err != nil {
		return ActionResult{}, fmt.Errorf("q cleanup: %w", err)
	}
	return ActionResult{Handle: handle, Raw: string(out)}, nil
}

// startArgs translates resource requests into q flags.
// Memory converts to MB, priority is negated (q counts low as important).
func startArgs(opts StartOptions) []string {
	var args []string

	if opts.TimeSeconds > 0 {
		args = append(args, "-time", fmt.Sprintf("%ds", int64(opts.TimeSeconds)))
	}
	if opts.MemoryBytes > 0 {
		args = append(args, "-mem", fmt.Sprintf("%dm", int64(opts.MemoryBytes/(1024*1024))))
	}
	if opts.CPUs > 0 {
		args = append(args, "-cpus", fmt.Sprintf("%d", opts.CPUs))
	}
	if opts.GPUs > 0 {
		args = append(args, "-gpus", fmt.Sprintf("%d", opts.GPUs))
	}
	if opts.Priority != 0 {
		args = append(args, "-priority", "--", fmt.Sprintf("%d", -opts.Priority))
	}

	if opts.ShareWorkingPath {
		args = append(args, "-shareWorkingPath", "true")
	} else {
		// q runs the script in a scratch directory; tell it to copy
		// everything related to the script back out.
		dir := filepath.Dir(opts.Script)
		stem := strings.TrimSuffix(filepath.Base(opts.Script), filepath.Ext(opts.Script))
		// The .action file is watched while the job runs; kill
		// messages are delivered through it.
		args = append(args,
			"-shareWorkingPath", "false",
			"-inPaths", filepath.Join(dir, stem)+"*",
			"-realtimeInPaths", filepath.Join(dir, stem)+".action",
			"-outPath", dir,
			"-outFiles", "full:"+stem+"*",
		)
	}

	args = append(args, "-add", "bash", opts.Script, "use_script_for_temp_dir")
	return args
}
