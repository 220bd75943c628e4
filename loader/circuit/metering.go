package circuit

// RowMetering is one (label, rows) entry of the diagnostic row-cost log.
type RowMetering struct {
	Label string
	Rows  int
}

// rowMeter records circuit-row consumption between named checkpoints.
// Checkpoints must be strictly nested, last-opened first-closed; interleaved
// labels are not supported.
type rowMeter struct {
	entries []RowMetering
}

// StartCostMetering records the current row offset under a label. No-op
// unless the loader was built WithRowMetering.
func (l *Loader) StartCostMetering(label string) {
	if l.meter == nil {
		return
	}
	l.meter.entries = append(l.meter.entries, RowMetering{Label: label, Rows: l.ctx.Offset()})
}

// EndCostMetering rewrites the last opened label with the row delta since its
// start.
func (l *Loader) EndCostMetering() {
	if l.meter == nil {
		return
	}
	last := &l.meter.entries[len(l.meter.entries)-1]
	last.Rows = l.ctx.Offset() - last.Rows
}

// Meterings returns the recorded log, nil when metering is disabled.
func (l *Loader) Meterings() []RowMetering {
	if l.meter == nil {
		return nil
	}
	return l.meter.entries
}

// LogRowMetering dumps the recorded log through the component logger, for
// benchmark runs.
func (l *Loader) LogRowMetering() {
	for _, e := range l.Meterings() {
		l.log.Info().Str("label", e.Label).Int("rows", e.Rows).Msg("row metering")
	}
}
