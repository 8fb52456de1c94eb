package domain

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Card is a single summary metric shown above the tables.
type Card struct {
	Title string `json:"title" yaml:"title"`
	Value Value  `json:"value" yaml:"value"`
}

// Cell pairs a column name with its value.
type Cell struct {
	Column string
	Value  Value
}

// Row is an ordered list of cells. Cell order follows the table headers.
type Row []Cell

// Get returns the value stored under column.
func (r Row) Get(column string) (Value, bool) {
	for _, c := range r {
		if c.Column == column {
			return c.Value, true
		}
	}
	return Value{}, false
}

// MarshalJSON writes the row as an object whose keys keep the cell order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c.Column)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the row as a mapping node with ordered keys.
func (r Row) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range r {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: c.Column}
		val := &yaml.Node{}
		if err := val.Encode(c.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// Table is a tabular projection. Presentation logic keys off the literal
// header text, so headers are part of the contract.
type Table struct {
	Headers []string `json:"headers" yaml:"headers"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

// Column returns every value of the named column in row order. Rows missing
// the column are skipped.
func (t Table) Column(name string) []Value {
	var out []Value
	for _, r := range t.Rows {
		if v, ok := r.Get(name); ok {
			out = append(out, v)
		}
	}
	return out
}

// Result is the output of one calculator invocation.
type Result struct {
	Cards  []Card   `json:"cards" yaml:"cards"`
	Tables []Table  `json:"tables" yaml:"tables"`
	Notes  []string `json:"notes" yaml:"notes"`
}

// Card returns the card with the given title.
func (r Result) Card(title string) (Card, bool) {
	for _, c := range r.Cards {
		if c.Title == title {
			return c, true
		}
	}
	return Card{}, false
}

// NewRow pairs each header with the value at the same position.
func NewRow(headers []string, values ...Value) Row {
	row := make(Row, 0, len(headers))
	for i, h := range headers {
		if i >= len(values) {
			break
		}
		row = append(row, Cell{Column: h, Value: values[i]})
	}
	return row
}
