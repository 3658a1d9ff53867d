package tracelog

import (
	"NetSyncDiff/internal/model"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParse(t *testing.T) {
	log := "timestep 1\n0,0\n1.5, -2\n\ntimestep 2\n\n 3e2 ,4\n"

	trace, err := Parse(strings.NewReader(log))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := model.Trace{
		{{X: 0, Y: 0}, {X: 1.5, Y: -2}},
		{{X: 300, Y: 4}},
	}
	require.Equal(t, expected, trace)
}

func TestParse_HeaderOnlyBlocks(t *testing.T) {
	trace, err := Parse(strings.NewReader("t0\nt1\n\nt2 anything at all\n"))
	require.NoError(t, err)
	require.Len(t, trace, 3)
	for i, b := range trace {
		require.Emptyf(t, b, "block %d", i)
	}
}

func TestParse_CRLF(t *testing.T) {
	trace, err := Parse(strings.NewReader("timestep 0\r\n1,2\r\n\r\n"))
	require.NoError(t, err)
	require.Equal(t, model.Trace{{{X: 1, Y: 2}}}, trace)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		log  string
		line int
	}{
		{"single value", "t\n1\n", 2},
		{"three values", "t\n1,2,3\n", 2},
		{"not a number", "t\n\n1,abc\n", 3},
		{"empty token", "t\n1,\n", 2},
		{"whitespace line", "t\n   \n", 2},
		{"data before header", "1,2\nt\n", 1},
		{"hex float", "t\n0x1p3,1\n", 2},
		{"signed hex float", "t\n1, -0X10\n", 2},
		{"digit separator", "t\n1_000,1\n", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trace, err := Parse(strings.NewReader(tc.log))
			require.Nil(t, trace)
			require.ErrorIs(t, err, ErrParse)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, tc.line, perr.Line)
		})
	}
}

func TestParsePoint_Literals(t *testing.T) {
	cases := map[string]model.Point{
		"1e3,-2.5E-1": {X: 1000, Y: -0.25},
		"+4,.5":       {X: 4, Y: 0.5},
		" 7 , 8 ":     {X: 7, Y: 8},
		"0,-0":        {X: 0, Y: 0},
	}
	for line, want := range cases {
		got, err := ParsePoint(line)
		if err != nil {
			t.Fatalf("ParsePoint(%q) failed: %v", line, err)
		}
		if got != want {
			t.Errorf("ParsePoint(%q): expected %+v, got %+v", line, want, got)
		}
	}

	p, err := ParsePoint("inf,nan")
	require.NoError(t, err)
	require.True(t, math.IsInf(p.X, 1))
	require.True(t, math.IsNaN(p.Y))
}

func TestParse_NoHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("\n0,0\n"))
	require.ErrorIs(t, err, ErrNoHeader)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log_host.txt")
	if err := os.WriteFile(path, []byte("timestep 1\n0,0\n1,1\ntimestep 2\n2,2\n"), 0644); err != nil {
		t.Fatalf("Failed to write log: %v", err)
	}

	trace, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(trace) != 2 || trace.Points() != 3 {
		t.Errorf("Expected 2 blocks and 3 points, got %d blocks and %d points", len(trace), trace.Points())
	}
}

func TestLoad_ParseErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log_client.txt")
	require.NoError(t, os.WriteFile(path, []byte("t\nx,y\n"), 0644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrParse)
	require.Contains(t, err.Error(), path+":2")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

// Generated logs with arbitrary blank lines parse back to the same blocks.
func TestParse_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		blocks := rapid.SliceOfN(
			rapid.SliceOfN(rapid.Float64Range(-1e6, 1e6), 0, 20),
			0, 10,
		).Draw(t, "blocks")
		blank := rapid.IntRange(0, 2)

		var sb strings.Builder
		for i, b := range blocks {
			sb.WriteString(strings.Repeat("\n", blank.Draw(t, "blank")))
			fmt.Fprintf(&sb, "timestep %d\n", i)
			for _, v := range b {
				sb.WriteString(strings.Repeat("\n", blank.Draw(t, "blank")))
				fmt.Fprintf(&sb, "%v,%v\n", v, -v)
			}
		}

		trace, err := Parse(strings.NewReader(sb.String()))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(trace) != len(blocks) {
			t.Fatalf("expected %d blocks, got %d", len(blocks), len(trace))
		}
		for i, b := range blocks {
			if len(trace[i]) != len(b) {
				t.Fatalf("block %d: expected %d points, got %d", i, len(b), len(trace[i]))
			}
			for j, v := range b {
				if trace[i][j] != (model.Point{X: v, Y: -v}) {
					t.Fatalf("block %d point %d: expected (%v,%v), got %+v", i, j, v, -v, trace[i][j])
				}
			}
		}
	})
}
