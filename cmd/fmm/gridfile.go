package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/eikonal/gridgraph"
)

// readGrid parses whitespace-separated float rows. Blank lines and lines
// starting with '#' are skipped. Row lengths are checked by gridgraph.
func readGrid(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", line, i+1)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading grid")
	}
	return rows, nil
}

// cellList collects repeatable "x,y" flags.
type cellList [][2]int

func (l *cellList) String() string {
	parts := make([]string, len(*l))
	for i, c := range *l {
		parts[i] = fmt.Sprintf("%d,%d", c[0], c[1])
	}
	return strings.Join(parts, " ")
}

func (l *cellList) Set(s string) error {
	c, err := parseCell(s)
	if err != nil {
		return err
	}
	*l = append(*l, c)
	return nil
}

// parseCell parses "x,y".
func parseCell(s string) ([2]int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return [2]int{}, errors.Errorf("cell %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return [2]int{}, errors.Wrapf(err, "cell %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return [2]int{}, errors.Wrapf(err, "cell %q", s)
	}
	return [2]int{x, y}, nil
}

// writeDistances prints one row per grid line; cells without a final
// arrival time (unreached, or left Trial by a limit) print as "-".
func writeDistances(w io.Writer, gg *gridgraph.GridGraph, dm *gridgraph.DistanceMap) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			if dm.Reached(x, y) {
				fmt.Fprintf(bw, "%7.3f", dm.At(x, y))
			} else {
				fmt.Fprintf(bw, "%7s", "-")
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
