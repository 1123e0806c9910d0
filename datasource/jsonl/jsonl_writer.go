package jsonl

import (
	"bytes"
	"io"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/internal/compression"
	"github.com/go-tabular/tabular/logging"
	json "github.com/json-iterator/go"
)

// Write serializes a DataFrame as JSONL data: one JSON object per line, with
// fields in column order. Column names are written verbatim as top-level
// keys, and cells holding the MissingValue sentinel are written as JSON null.
func Write(frame *tabular.DataFrame, w io.Writer) error {
	names := frame.Columns()
	encodedNames := make([][]byte, len(names))
	for i, name := range names {
		encoded, err := json.Marshal(name)
		if err != nil {
			return err
		}
		encodedNames[i] = encoded
	}
	var buf bytes.Buffer
	return frame.ForEachRow(func(idx int, row *tabular.Row) error {
		buf.Reset()
		buf.WriteByte('{')
		for i, cell := range row.Cells() {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(encodedNames[i])
			buf.WriteByte(':')
			if cell == tabular.MissingValue {
				buf.WriteString("null")
			} else {
				encoded, err := json.Marshal(cell)
				if err != nil {
					return err
				}
				buf.Write(encoded)
			}
		}
		buf.WriteString("}\n")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// WriteFile writes a DataFrame to the given JSONL file, replacing any
// existing contents and transparently compressing .lz4 and .zst files
func WriteFile(frame *tabular.DataFrame, fileName string) error {
	f, err := compression.CreateWriter(fileName)
	if err != nil {
		return err
	}
	if err := Write(frame, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logging.Logf(logging.DebugLevel, "Wrote %d rows and %d columns to %s", frame.Len(), frame.NumColumns(), fileName)
	return nil
}
