package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/nanstat/internal/logger"
	"github.com/katalvlaran/nanstat/nanops"
	"github.com/katalvlaran/nanstat/ndarray"
)

// reduceArgs carries the parsed reduce flags; nil Axis means the op default.
type reduceArgs struct {
	Op    string
	Axis  *ndarray.Axis
	DDoF  int
	DType string
}

type reduceOutput struct {
	Op     string        `json:"op"`
	Axis   string        `json:"axis"`
	Result nanops.Result `json:"result"`
}

func reduceCmd() *cli.Command {
	return &cli.Command{
		Name:      "reduce",
		Usage:     "Reduce a JSON array read from a file or stdin",
		ArgsUsage: "[nanmean|nanvar|nanstd|nanmedian|median|nanmin|nanmax|nanargmin|nanargmax]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "op",
				Aliases: []string{"o"},
				Usage:   "reduction to apply",
				Value:   "nanmean",
			},
			&cli.StringFlag{
				Name:    "axis",
				Aliases: []string{"a"},
				Usage:   "axis to reduce, or \"none\" for the whole array (default: per reduction)",
			},
			&cli.IntFlag{
				Name:  "ddof",
				Usage: "delta degrees of freedom for nanvar/nanstd (0 or 1; default from config)",
			},
			&cli.StringFlag{
				Name:  "dtype",
				Usage: "cast the input to this dtype before reducing",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "input JSON file (\"-\" for stdin)",
				Value:   "-",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := reduceArgs{
				Op:    cmd.String("op"),
				DDoF:  *configFrom(ctx).DDoF,
				DType: cmd.String("dtype"),
			}
			if cmd.NArg() > 0 {
				args.Op = cmd.Args().First()
			}
			if cmd.IsSet("axis") {
				axis, err := ndarray.ParseAxis(cmd.String("axis"))
				if err != nil {
					return fmt.Errorf("--axis: %w", err)
				}
				args.Axis = &axis
			}
			if cmd.IsSet("ddof") {
				args.DDoF = cmd.Int("ddof")
			}

			input, err := readInput(cmd.Root().Reader, cmd.String("input"))
			if err != nil {
				return err
			}
			logger.FromContext(ctx).Debug("reduce", "op", args.Op, "ddof", args.DDoF, "bytes", len(input))
			return runReduce(cmd.Root().Writer, input, args)
		},
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// runReduce decodes one array document, reduces it and writes a single JSON
// line to w.
func runReduce(w io.Writer, input []byte, args reduceArgs) error {
	op, err := nanops.ParseOp(args.Op)
	if err != nil {
		return err
	}
	var x ndarray.Array
	if err := json.Unmarshal(input, &x); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	arr := &x
	if args.DType != "" {
		dt, err := ndarray.ParseDType(args.DType)
		if err != nil {
			return err
		}
		if !dt.Inexact() && hasNonFinite(x.Data()) {
			return fmt.Errorf("--dtype %s: %w", dt, ndarray.ErrNaNInf)
		}
		if arr, err = arr.AsType(dt); err != nil {
			return err
		}
	}

	var opts []nanops.Option
	axisLabel := "default"
	if args.Axis != nil {
		opts = append(opts, nanops.WithReduceAxis(*args.Axis))
		axisLabel = args.Axis.String()
	}
	if op.UsesDDoF() {
		opts = append(opts, nanops.WithDDoF(args.DDoF))
	}

	res, err := nanops.Reduce(op, arr, opts...)
	if err != nil {
		return err
	}
	out, err := json.Marshal(reduceOutput{Op: op.String(), Axis: axisLabel, Result: res})
	if err != nil {
		return err
	}
	_, err = w.Write(append(out, '\n'))
	return err
}

func opsCmd() *cli.Command {
	return &cli.Command{
		Name:  "ops",
		Usage: "List the available reductions",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeOps(cmd.Root().Writer)
		},
	}
}

func writeOps(w io.Writer) error {
	for _, op := range nanops.Ops() {
		line := op.String()
		if op.UsesDDoF() {
			line += "\t(ddof)"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func hasNonFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
