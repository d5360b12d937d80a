package cmdutil

import (
	"context"

	"seqcheck/internal/engine"
	"seqcheck/internal/pipeline"
)

// Counts summarizes a run.
type Counts struct {
	Inputs    int // reports sent
	Anomalies int // reports with an anomaly
}

// RunStream runs the shared pipeline and streams each report via send.
// It returns the counts of sent reports and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	inputs []string,
	an pipeline.Analyzer,
	send func(engine.Report) error,
) (Counts, error) {
	var c Counts
	err := pipeline.ForEachReport(ctx, cfg, inputs, an, func(r engine.Report) error {
		if err := send(r); err != nil {
			return err
		}
		c.Inputs++
		if r.Found {
			c.Anomalies++
		}
		return nil
	})
	return c, err
}
