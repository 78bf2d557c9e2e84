// Command gomorphctl is a small demo driver for the gomorph pattern-
// decomposition engine: it builds a 2-D matrix (random, or loaded from a
// flat text file), dilates or erodes it by a named structuring element, and
// prints the result, the worker-pool size, and the detected temp-memory
// budget.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/gomorph/config"
	"github.com/ajroetker/gomorph/execctx"
	"github.com/ajroetker/gomorph/morph"
	"github.com/ajroetker/gomorph/morph/contrib/workerpool"
	"github.com/ajroetker/gomorph/pattern"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var rows, cols int
	var shapeName string
	var shapeSize int
	var from, to string
	var erode bool

	cmd := &cobra.Command{
		Use:   "gomorphctl",
		Short: "Run grayscale dilation/erosion over a generated or loaded matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			fmt.Fprintf(cmd.OutOrStdout(), "workers: %d, temp memory budget: %d bytes\n",
				cfg.RecommendedWorkers(), cfg.DefaultTempMemoryBytes)

			dims := []int{rows, cols}
			src, err := loadOrGenerate(from, dims)
			if err != nil {
				return err
			}

			p, err := buildPattern(shapeName, shapeSize)
			if err != nil {
				return err
			}

			pool := workerpool.New(cfg.RecommendedWorkers())
			defer pool.Close()
			ctx := execctx.New(context.Background(), pool, cfg, nil)

			dst := morph.NewMatrix[int64](dims)
			if erode {
				err = morph.Erosion[int64](ctx, dims, src, dst, p)
			} else {
				err = morph.Dilation[int64](ctx, dims, src, dst, p)
			}
			if err != nil {
				return err
			}

			if to != "" {
				return writeMatrix(to, dst, dims)
			}
			printMatrix(cmd, dst, dims)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 8, "matrix row count (with --from, the file must hold rows*cols values)")
	cmd.Flags().IntVar(&cols, "cols", 8, "matrix column count (with --from, the file must hold rows*cols values)")
	cmd.Flags().StringVar(&shapeName, "shape", "cross", "structuring element: segment, rectangle, disk, cross")
	cmd.Flags().IntVar(&shapeSize, "shape-size", 3, "structuring element size (segment length, rectangle side, disk radius)")
	cmd.Flags().StringVar(&from, "from", "", "load the source matrix from a flat text file instead of generating one")
	cmd.Flags().StringVar(&to, "to", "", "write the result to a flat text file instead of stdout")
	cmd.Flags().BoolVar(&erode, "erode", false, "erode instead of dilate")
	return cmd
}

func buildPattern(name string, size int) (*pattern.Pattern, error) {
	switch strings.ToLower(name) {
	case "segment":
		return pattern.Segment(2, 0, size), nil
	case "rectangle":
		return pattern.Rectangle([]int{size, size}), nil
	case "disk":
		return pattern.Disk(float64(size)), nil
	case "cross":
		return pattern.Cross(2), nil
	default:
		return nil, fmt.Errorf("gomorphctl: unknown shape %q", name)
	}
}

// loadOrGenerate builds a dims-shaped matrix either from a flat whitespace-
// separated text file (one value per cell, row-major) or, absent --from,
// from a fixed-seed PRNG so demo runs are reproducible.
func loadOrGenerate(from string, dims []int) (*morph.Matrix[int64], error) {
	if from == "" {
		rng := rand.New(rand.NewSource(1))
		l := dims[0] * dims[1]
		data := make([]int64, l)
		for i := range data {
			data[i] = rng.Int63n(100)
		}
		return morph.NewMatrixFromData[int64](dims, data), nil
	}

	f, err := os.Open(from)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var data []int64
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		for _, field := range strings.Fields(scanner.Text()) {
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("gomorphctl: %s: %w", from, err)
			}
			data = append(data, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return morph.NewMatrixFromData[int64](dims, data), nil
}

func writeMatrix(to string, m *morph.Matrix[int64], dims []int) error {
	f, err := os.Create(to)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()
	for r := 0; r < dims[0]; r++ {
		for c := 0; c < dims[1]; c++ {
			if c > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, m.At(r*dims[1]+c))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func printMatrix(cmd *cobra.Command, m *morph.Matrix[int64], dims []int) {
	out := cmd.OutOrStdout()
	for r := 0; r < dims[0]; r++ {
		for c := 0; c < dims[1]; c++ {
			if c > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprintf(out, "%3d", m.At(r*dims[1]+c))
		}
		fmt.Fprintln(out)
	}
}
