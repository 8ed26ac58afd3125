package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunFindsPreamble(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "256", "-length", "2000", "-pattern", "63", "-offset", "150,1500", "-noise", "0.3"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, lag := range []string{"150", "1500"} {
		if !strings.Contains(out, "\n"+lag+" ") && !strings.Contains(out, " "+lag+" ") {
			t.Fatalf("lag %s missing from output:\n%s", lag, out)
		}
	}
	if strings.Contains(out, "no detections") {
		t.Fatalf("unexpected empty result:\n%s", out)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	tests := [][]string{
		{"-backend", "fftw"},
		{"-pattern", "0"},
		{"-n", "64", "-pattern", "127"},
		{"-length", "100", "-offset", "90"},
		{"-offset", "x"},
	}
	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code == 0 {
			t.Fatalf("run(%v) succeeded, want failure", args)
		}
		if stderr.Len() == 0 {
			t.Fatalf("run(%v) wrote nothing to stderr", args)
		}
	}
}

func TestPreambleIsBPSK(t *testing.T) {
	p := preamble(100)
	if len(p) != 100 {
		t.Fatalf("len = %d, want 100", len(p))
	}
	for i, v := range p {
		if v != 1 && v != -1 {
			t.Fatalf("p[%d] = %v", i, v)
		}
	}
}
