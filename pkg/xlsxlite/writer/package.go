package writer

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/models"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// zipEpoch is stamped on every entry so identical workbooks produce
// identical archives.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options configures package serialization.
type Options struct {
	// Logger receives debug statistics and degrade warnings.
	Logger logrus.FieldLogger
	// CompressionLevel is the deflate level for archive entries.
	CompressionLevel int
}

// DefaultOptions returns default serialization options.
func DefaultOptions() Options {
	return Options{
		Logger:           logrus.StandardLogger(),
		CompressionLevel: flate.DefaultCompression,
	}
}

// Write serializes sheets, in order, into an xlsx package and copies it to
// w. The archive is built in memory first, so nothing reaches w when an
// error is returned.
func Write(w io.Writer, sheets []*models.SheetData, opts Options) (*models.WorkbookReport, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if len(sheets) == 0 {
		log.Warn("writing workbook without sheets")
	}

	pkg := &opcPackage{}
	wbRels := &relationships{}
	workbook := &xlsxWorkbook{Xmlns: nsMain, XmlnsR: nsR}
	report := &models.WorkbookReport{}

	if err := pkg.addPart("xl/styles.xml", ctStyles, stylesheet(), nil); err != nil {
		return nil, NewWriteError("", "styles", err)
	}
	wbRels.add(relTypeStyles, "styles.xml", false)

	// One table for the whole workbook: identical text in different sheets
	// shares an index.
	sst := NewSharedStrings()

	for i, sheet := range sheets {
		sheetID := i + 1
		enc := encodeSheet(sheet, sst, log)

		wsRels := &relationships{}
		ws, err := assembleWorksheet(enc, sheet, wsRels)
		if err != nil {
			return nil, NewWriteError(sheet.Name, "hyperlinks", err)
		}

		name := "xl/worksheets/sheet" + strconv.Itoa(sheetID) + ".xml"
		if err := pkg.addPart(name, ctWorksheet, ws, wsRels); err != nil {
			return nil, NewWriteError(sheet.Name, "worksheet", err)
		}
		rid := wbRels.add(relTypeWorksheet, strings.TrimPrefix(name, "xl/"), false)
		workbook.Sheets.Sheet = append(workbook.Sheets.Sheet, xlsxSheet{
			Name:    sheet.Name,
			SheetID: sheetID,
			RID:     rid,
		})

		sr := models.SheetReport{
			Name:         sheet.Name,
			SheetID:      sheetID,
			Part:         name,
			Rows:         len(enc.Rows),
			Columns:      sheet.ColumnCount,
			Hyperlinks:   len(enc.Hyperlinks),
			ColumnWidths: enc.Widths,
		}
		if ws.SheetViews != nil {
			sr.Frozen = ws.SheetViews.SheetView[0].Pane.TopLeftCell
		}
		report.Sheets = append(report.Sheets, sr)

		log.WithFields(logrus.Fields{
			"sheet":      sheet.Name,
			"rows":       sr.Rows,
			"columns":    sr.Columns,
			"hyperlinks": sr.Hyperlinks,
		}).Debug("encoded sheet")
	}

	// Shared strings are flushed only after every sheet is encoded.
	if sstPart := sst.part(); sstPart != nil {
		if err := pkg.addPart("xl/sharedStrings.xml", ctSharedStrings, sstPart, nil); err != nil {
			return nil, NewWriteError("", "shared strings", err)
		}
		wbRels.add(relTypeSharedStrings, "sharedStrings.xml", false)
	}

	if err := pkg.addPart("xl/workbook.xml", ctWorkbook, workbook, wbRels); err != nil {
		return nil, NewWriteError("", "workbook", err)
	}
	pkg.rels.add(relTypeOfficeDocument, "xl/workbook.xml", false)

	var buf bytes.Buffer
	parts, err := pkg.writeTo(&buf, opts.CompressionLevel)
	if err != nil {
		return nil, NewWriteError("", "package", err)
	}
	report.SharedStrings = sst.Len()
	report.Parts = parts
	report.Size = int64(buf.Len())

	log.WithFields(logrus.Fields{
		"sheets":         len(sheets),
		"shared_strings": report.SharedStrings,
		"bytes":          report.Size,
	}).Debug("wrote package")

	if _, err := buf.WriteTo(w); err != nil {
		return nil, NewWriteError("", "package", err)
	}
	return report, nil
}

// relationships is the relationship set owned by one part.
type relationships struct {
	items []xlsxRelationship
}

// add registers a relationship and returns its id.
func (r *relationships) add(relType, target string, external bool) string {
	id := "rId" + strconv.Itoa(len(r.items)+1)
	rel := xlsxRelationship{ID: id, Type: relType, Target: target}
	if external {
		rel.TargetMode = "External"
	}
	r.items = append(r.items, rel)
	return id
}

func (r *relationships) empty() bool {
	return r == nil || len(r.items) == 0
}

func (r *relationships) document() *xlsxRelationships {
	return &xlsxRelationships{Xmlns: nsPackageRels, Relationships: r.items}
}

type part struct {
	name        string
	contentType string
	body        []byte
	rels        *relationships
}

// opcPackage collects serialized parts in the order they were added.
type opcPackage struct {
	parts []*part
	rels  relationships
}

func (p *opcPackage) addPart(name, contentType string, v interface{}, rels *relationships) error {
	body, err := marshalPart(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	p.parts = append(p.parts, &part{name: name, contentType: contentType, body: body, rels: rels})
	return nil
}

// writeTo writes the archive: content types and package relationships
// first, then each part followed by its own relationships. It returns the
// entry names in archive order.
func (p *opcPackage) writeTo(w io.Writer, level int) ([]string, error) {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	var names []string
	write := func(name string, v interface{}) error {
		body, err := marshalPart(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", name, err)
		}
		return p.writeEntry(zw, &names, name, body)
	}

	if err := write("[Content_Types].xml", p.contentTypes()); err != nil {
		return nil, err
	}
	if err := write("_rels/.rels", p.rels.document()); err != nil {
		return nil, err
	}
	for _, pt := range p.parts {
		if err := p.writeEntry(zw, &names, pt.name, pt.body); err != nil {
			return nil, err
		}
		if pt.rels.empty() {
			continue
		}
		if err := write(relsPartName(pt.name), pt.rels.document()); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return names, nil
}

func (p *opcPackage) writeEntry(zw *zip.Writer, names *[]string, name string, body []byte) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: zipEpoch,
	})
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := fw.Write(body); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	*names = append(*names, name)
	return nil
}

func (p *opcPackage) contentTypes() *xlsxTypes {
	types := &xlsxTypes{
		Xmlns: nsContentTypes,
		Defaults: []xlsxDefault{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: ctXML},
		},
	}
	for _, pt := range p.parts {
		types.Overrides = append(types.Overrides, xlsxOverride{
			PartName:    "/" + pt.name,
			ContentType: pt.contentType,
		})
	}
	return types
}

// relsPartName returns the relationships part for a source part, e.g.
// xl/workbook.xml -> xl/_rels/workbook.xml.rels.
func relsPartName(name string) string {
	return path.Join(path.Dir(name), "_rels", path.Base(name)+".rels")
}

func marshalPart(v interface{}) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlHeader), body...), nil
}
