package appcore

import (
	"io"

	"seqcheck/internal/engine"
	"seqcheck/internal/writers"
)

// ReportWriterFactory starts the registered writer for Format.
type ReportWriterFactory struct {
	Format string
	Header bool
}

func NewReportWriterFactory(format string, header bool) ReportWriterFactory {
	return ReportWriterFactory{Format: format, Header: header}
}

func (w ReportWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Report, <-chan error) {
	return writers.StartReportWriter(out, w.Format, w.Header, bufSize)
}
