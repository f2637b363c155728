package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// maxReportedMismatches caps how many mismatches the report lists
// individually; the total count is always printed.
const maxReportedMismatches = 8

// WriteReport renders a human-readable results table for one run.
func WriteReport(w io.Writer, r Result) error {
	header := fmt.Sprintf(
		"Q15 AXPY Benchmark\n==================\nSize:  %d elements\nAlpha: 0x%04X (%.3f Q15)\nSeed:  %d\n\n",
		r.N, uint16(r.Alpha), float64(r.Alpha)/32768, r.Seed,
	)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Implementation\tTime [ns]\tSpeedup\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--------------\t---------\t-------\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "reference\t%d\t1.00x\n", r.ReferenceNs); err != nil {
		return err
	}

	speedup := "n/a"
	if r.Speedup > 0 {
		speedup = fmt.Sprintf("%.2fx", r.Speedup)
	}
	if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Impl, r.OptimizedNs, speedup); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !r.Verified {
		for i, m := range r.Mismatches {
			if i == maxReportedMismatches {
				if _, err := fmt.Fprintf(w, "... and %d more\n", len(r.Mismatches)-maxReportedMismatches); err != nil {
					return err
				}
				break
			}
			if _, err := fmt.Fprintf(w, "mismatch at index %d: ref=%d got=%d\n", m.Index, m.Ref, m.Got); err != nil {
				return err
			}
		}
	}

	verdict := "FAILED"
	if r.Verified {
		verdict = "PASSED (bit-exact)"
	}

	_, err := fmt.Fprintf(w, "\nVerification: %s\n", verdict)

	return err
}
