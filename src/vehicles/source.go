package vehicles

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bebeshannu/datavis-a2/src/logging"
)

// DefaultLocation is the relative location the data table is fetched from.
const DefaultLocation = "data/cars.csv"

// Source yields the header row and data rows of one table.
type Source interface {
	Rows(ctx context.Context) (header []string, rows [][]string, err error)
	String() string
}

// FileSource reads a local delimited text file or an .xlsx workbook (first sheet).
type FileSource struct {
	Path string
	// Delimiter for text files. 0 auto-detects among ',', ';' and tab.
	Delimiter rune
}

func (s FileSource) String() string { return s.Path }

func (s FileSource) Rows(ctx context.Context) ([]string, [][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if isWorkbook(s.Path) {
		f, err := excelize.OpenFile(s.Path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		return workbookRows(f)
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return delimitedRows(f, s.Delimiter)
}

// HTTPSource fetches the table with a single GET of Path resolved against BaseURL.
type HTTPSource struct {
	BaseURL string
	Path    string
	Client  *http.Client
}

func (s HTTPSource) String() string {
	u, err := s.URL()
	if err != nil {
		return s.BaseURL + s.Path
	}
	return u
}

// URL returns the resolved location.
func (s HTTPSource) URL() (string, error) {
	base, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", fmt.Errorf("base url: %w", err)
	}
	ref, err := url.Parse(s.Path)
	if err != nil {
		return "", fmt.Errorf("path: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}

func (s HTTPSource) Rows(ctx context.Context) ([]string, [][]string, error) {
	u, err := s.URL()
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, nil, fmt.Errorf("%w: %s returned %s", ErrFetch, u, resp.Status)
	}
	p := u
	if parsed, perr := url.Parse(u); perr == nil {
		p = parsed.Path
	}
	if isWorkbook(p) {
		f, err := excelize.OpenReader(resp.Body)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		return workbookRows(f)
	}
	return delimitedRows(resp.Body, 0)
}

// NewSource picks an HTTPSource for http(s) locations and a FileSource otherwise. When base
// is non-empty, location is resolved against it.
func NewSource(base, location string) Source {
	if base != "" {
		return HTTPSource{BaseURL: base, Path: location}
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return HTTPSource{BaseURL: location}
	}
	return FileSource{Path: location}
}

// Stats summarises one load.
type Stats struct {
	Rows int // data rows read
	Kept int // rows that made it into the Dataset
}

// Dropped returns how many rows Filter rejected.
func (s Stats) Dropped() int { return s.Rows - s.Kept }

// LoadRecords fetches src once and parses every data row. Any fetch or decode failure is
// returned as a *LoadError; per-cell problems never are.
func LoadRecords(ctx context.Context, src Source) ([]Vehicle, error) {
	defer logging.TimeTrack(time.Now(), "load "+src.String())
	header, rows, err := src.Rows(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.String(), Err: err}
	}
	if len(header) == 0 {
		return nil, &LoadError{Source: src.String(), Err: ErrNoHeader}
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	out := make([]Vehicle, 0, len(rows))
	for i, row := range rows {
		if blankRow(row) {
			continue
		}
		v := ParseRow(header, row)
		v.Row = i + 1
		out = append(out, v)
	}
	return out, nil
}

// Load fetches and parses src, then applies Filter.
func Load(ctx context.Context, src Source) (Dataset, Stats, error) {
	recs, err := LoadRecords(ctx, src)
	if err != nil {
		return nil, Stats{}, err
	}
	ds := Filter(recs)
	st := Stats{Rows: len(recs), Kept: len(ds)}
	if st.Dropped() > 0 {
		for _, v := range recs {
			if !v.Valid() {
				logging.Debugf("row %d (%s) dropped: price=%v hp=%v", v.Row, v.Name, v.RetailPrice, v.Horsepower)
			}
		}
	}
	logging.Infof("loaded %s: rows=%d kept=%d dropped=%d", src, st.Rows, st.Kept, st.Dropped())
	if st.Kept == 0 {
		logging.Warnf("%s: no vehicles with both retail price and horsepower", src)
	}
	return ds, st, nil
}

func isWorkbook(p string) bool {
	return strings.EqualFold(path.Ext(filepath.ToSlash(p)), ".xlsx")
}

func workbookRows(f *excelize.File) ([]string, [][]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrNoHeader
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrNoHeader
	}
	return rows[0], rows[1:], nil
}

func delimitedRows(r io.Reader, delim rune) ([]string, [][]string, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	if delim == 0 {
		head, _ := br.Peek(4096)
		delim = detectDelimiter(head)
	}
	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrNoHeader
	}
	if err != nil {
		return nil, nil, fmt.Errorf("header: %w", err)
	}
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	return header, rows, nil
}

// detectDelimiter picks the most frequent of ',', ';' and tab on the first line.
func detectDelimiter(head []byte) rune {
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	best, bestN := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if n := bytes.Count(head, []byte(string(d))); n > bestN {
			best, bestN = d, n
		}
	}
	return best
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
