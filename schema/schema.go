package schema

import (
	"fmt"
	"strings"

	"github.com/go-tabular/tabular/errors"
)

// Schema is an ordered mapping from column names to cell
// positions within a Row. It allows one to obtain positions
// by name, list columns in order, project subsets, etc.
// A Schema is never modified after creation.
type Schema struct {
	names   []string
	offsets map[string]int
}

// CreateSchema is a factory for Schemas
func CreateSchema(colNames ...string) (*Schema, error) {
	if len(colNames) == 0 {
		return nil, errors.EmptySchemaError{}
	}
	s := &Schema{
		names:   make([]string, 0, len(colNames)),
		offsets: make(map[string]int, len(colNames)),
	}
	for _, name := range colNames {
		if _, exists := s.offsets[name]; exists {
			return nil, errors.DuplicateColumnError{Name: name}
		}
		s.offsets[name] = len(s.names)
		s.names = append(s.names, name)
	}
	return s, nil
}

// NumColumns returns the number of columns in this Schema
func (s *Schema) NumColumns() int {
	return len(s.names)
}

// ColumnIndex returns the cell position of the named column within a Row
func (s *Schema) ColumnIndex(colName string) (int, error) {
	idx, ok := s.offsets[colName]
	if !ok {
		return -1, errors.ColumnNotFoundError{Name: colName}
	}
	return idx, nil
}

// HasColumn returns true iff this Schema contains a column with the given name
func (s *Schema) HasColumn(colName string) bool {
	_, ok := s.offsets[colName]
	return ok
}

// ColumnNames returns the names in this Schema, in index order
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ForEachColumn iterates over the columns in this Schema, in index order
func (s *Schema) ForEachColumn(fn func(name string, idx int) error) error {
	for i, name := range s.names {
		if err := fn(name, i); err != nil {
			return err
		}
	}
	return nil
}

// Select produces a new Schema containing only the given columns, in the given order
func (s *Schema) Select(colNames ...string) (*Schema, error) {
	for _, name := range colNames {
		if !s.HasColumn(name) {
			return nil, errors.ColumnNotFoundError{Name: name}
		}
	}
	return CreateSchema(colNames...)
}

// Equals returns nil iff this and another Schema define the same columns in the same order
func (s *Schema) Equals(other *Schema) error {
	if other == nil {
		return fmt.Errorf("other Schema is nil")
	}
	if s.NumColumns() != other.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	for i, name := range s.names {
		if other.names[i] != name {
			return fmt.Errorf("Column %d is named %s in one Schema and %s in the other", i, name, other.names[i])
		}
	}
	return nil
}

// Clone returns a copy of this Schema
func (s *Schema) Clone() *Schema {
	clone, _ := CreateSchema(s.names...)
	return clone
}

// String returns a textual representation of this Schema
func (s *Schema) String() string {
	return fmt.Sprintf("Schema(%s)", strings.Join(s.names, ", "))
}
