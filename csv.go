package tabular

import (
	"encoding/csv"
	"io"

	"github.com/go-tabular/tabular/errors"
	"github.com/go-tabular/tabular/internal/compression"
	"github.com/go-tabular/tabular/logging"
	"github.com/go-tabular/tabular/schema"
)

// CSVConf configures CSV parsing and generation
type CSVConf struct {
	Delimiter rune // The delimiter separating columns. Defaults to ,
	Comment   rune // Lines beginning with the comment character are ignored during parsing. Cannot be equal to the Delimiter. Defaults to no comment character.
}

func (c *CSVConf) delimiter() rune {
	if c == nil || c.Delimiter == 0 {
		return ','
	}
	return c.Delimiter
}

func (c *CSVConf) comment() rune {
	if c == nil {
		return 0
	}
	return c.Comment
}

// ParseCSV parses CSV data with a leading header line to produce a DataFrame.
// The header supplies the Schema, and every record must carry one field per
// column. Data containing no records is an EmptyFrameError.
func ParseCSV(r io.Reader, conf *CSVConf) (*DataFrame, error) {
	reader := csv.NewReader(r)
	reader.Comma = conf.delimiter()
	reader.Comment = conf.comment()
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.EmptyFrameError{}
	}
	if err != nil {
		return nil, err
	}
	s, err := schema.CreateSchema(header...)
	if err != nil {
		return nil, err
	}
	reader.FieldsPerRecord = s.NumColumns()

	var rows []*Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row, err := CreateRow(s, record...)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return CreateDataFrame(rows...)
}

// ReadCSV loads the given CSV file into a DataFrame, transparently
// decompressing .lz4 and .zst files
func ReadCSV(fileName string) (*DataFrame, error) {
	f, err := compression.OpenReader(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	df, err := ParseCSV(f, nil)
	if err != nil {
		return nil, err
	}
	logging.Logf(logging.DebugLevel, "Loaded %d rows and %d columns from %s", df.Len(), df.NumColumns(), fileName)
	return df, nil
}

// WriteCSV serializes this DataFrame as CSV: a header line of column names
// followed by one record per Row
func (df *DataFrame) WriteCSV(w io.Writer, conf *CSVConf) error {
	writer := csv.NewWriter(w)
	writer.Comma = conf.delimiter()
	if err := writer.Write(df.schema.ColumnNames()); err != nil {
		return err
	}
	for _, row := range df.rows {
		if err := writer.Write(row.cells); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ToCSV writes this DataFrame to the given CSV file, replacing any existing
// contents and transparently compressing .lz4 and .zst files
func (df *DataFrame) ToCSV(fileName string) error {
	f, err := compression.CreateWriter(fileName)
	if err != nil {
		return err
	}
	if err := df.WriteCSV(f, nil); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logging.Logf(logging.DebugLevel, "Wrote %d rows and %d columns to %s", df.Len(), df.NumColumns(), fileName)
	return nil
}
