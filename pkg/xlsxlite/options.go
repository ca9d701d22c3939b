// Package xlsxlite builds spreadsheet workbooks in memory and saves them as
// Office Open XML (.xlsx) packages.
package xlsxlite

import (
	"github.com/klauspost/compress/flate"
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/writer"
)

// Options configures workbook behavior.
type Options struct {
	// Logger receives save statistics and warnings about values that were
	// written in a fallback form. If nil, the standard logrus logger is used.
	Logger logrus.FieldLogger
	// AutoFitColumns sets the initial auto-fit flag of new sheets.
	// If nil, defaults to true.
	AutoFitColumns *bool
	// CompressionLevel sets the deflate level of archive entries.
	// If nil, defaults to flate.DefaultCompression.
	CompressionLevel *int
}

// DefaultOptions returns default workbook options.
func DefaultOptions() Options {
	return Options{
		Logger: logrus.StandardLogger(),
	}
}

// ShouldAutoFit returns whether new sheets estimate column widths.
func (o Options) ShouldAutoFit() bool {
	if o.AutoFitColumns != nil {
		return *o.AutoFitColumns
	}
	return true
}

// Compression returns the deflate level for archive entries.
func (o Options) Compression() int {
	if o.CompressionLevel != nil {
		return *o.CompressionLevel
	}
	return flate.DefaultCompression
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

func (o Options) writerOptions() writer.Options {
	return writer.Options{
		Logger:           o.logger(),
		CompressionLevel: o.Compression(),
	}
}
