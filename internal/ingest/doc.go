// Package ingest turns loosely structured EEG board text exports into
// rectangular channel matrices. Consumer acquisition boards write an unknown
// number of comment and banner lines, an optional header row, and a numeric
// block whose delimiter and column count vary across vendors, firmware
// versions and export settings; this package locates the numeric block,
// parses it tolerantly, cleans degenerate rows and columns, classifies the
// device from the cleaned shape and derives per-channel labels.
//
// # Architecture
//
// The pipeline is purely sequential and stateless between files:
//
//	raw lines → DetectHeader → ParseNumeric → Clean → ExtractChannels → GenerateLabels
//
// Each stage is an ordinary function; Pipeline wires them together, adds
// structured logging and owns file reading. Unparsable or absent cells are
// represented by NaN, never zero, so "entirely missing" stays observable to
// the cleaning passes.
//
// # Error Handling
//
// Only structural failures are errors: an unreadable file, a file with no
// lines, a file whose every line is metadata, or a data block that cannot
// be tokenized into a single column. All of them are *ParseError values,
// fatal for that file only. Ragged rows, bad cells and all-missing rows or
// columns are recovered in place and never propagate.
//
// # Usage
//
//	p := ingest.NewPipeline(logger, ingest.DefaultPipelineConfig())
//	rec, err := p.ParseFile(ctx, "session.txt")
//	if err != nil {
//	    // ingest.IsNoData(err), ingest.IsEmptyFile(err), ...
//	}
package ingest
