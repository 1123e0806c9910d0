package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/internal/compression"
	"github.com/go-tabular/tabular/logging"
	"github.com/go-tabular/tabular/schema"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser
type ParserConf struct {
	Columns       []string // The column names (gjson paths) to extract from each line. Defaults to the top-level keys of the first line, in document order.
	MaxBufferSize int      // Maximum size in bytes of the buffer used to read lines. Defaults to bufio.MaxScanTokenSize.
}

// Parser produces DataFrames from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Columns are extracted from each
// line of JSON using their column name, which should be a gjson path. Values
// within the JSON which do not correspond to a column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce a DataFrame. Blank lines are skipped,
// and null or absent values become the MissingValue sentinel. Data containing
// no records is an EmptyFrameError.
func (p *Parser) Parse(r io.Reader) (*tabular.DataFrame, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)

	colNames := p.conf.Columns
	var s *schema.Schema
	var rows []*tabular.Row
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if !gjson.Valid(line) {
			logging.Logf(logging.WarnLevel, "Unable to parse line:\n\t%s", line)
			return nil, fmt.Errorf("Line %d is not valid JSON", lineNo)
		}
		parsed := gjson.Parse(line)
		if s == nil {
			if len(colNames) == 0 {
				colNames = topLevelKeys(parsed)
			}
			var err error
			s, err = schema.CreateSchema(colNames...)
			if err != nil {
				return nil, err
			}
		}
		cells := make([]string, 0, len(colNames))
		for _, name := range colNames {
			cells = append(cells, cellValue(parsed.Get(name)))
		}
		row, err := tabular.CreateRow(s, cells...)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tabular.CreateDataFrame(rows...)
}

// topLevelKeys lists the top-level keys of a JSON object, in document order
func topLevelKeys(parsed gjson.Result) []string {
	keys := make([]string, 0)
	parsed.ForEach(func(key, value gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// cellValue renders a JSON value as a raw cell string, mapping null and
// absent values to the MissingValue sentinel
func cellValue(res gjson.Result) string {
	if !res.Exists() || res.Type == gjson.Null {
		return tabular.MissingValue
	}
	return res.String()
}

// Read loads the given JSONL file into a DataFrame, transparently
// decompressing .lz4 and .zst files
func Read(fileName string) (*tabular.DataFrame, error) {
	f, err := compression.OpenReader(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	df, err := CreateParser(&ParserConf{}).Parse(f)
	if err != nil {
		return nil, err
	}
	logging.Logf(logging.DebugLevel, "Loaded %d rows and %d columns from %s", df.Len(), df.NumColumns(), fileName)
	return df, nil
}
