package models

import (
	"errors"
	"strings"
)

// Person is one row of the sample table
type Person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// PersonColumns are the sample table column labels, in row value order
var PersonColumns = []string{"name", "age"}

// Values returns the row values in PersonColumns order
func (p Person) Values() []interface{} {
	return []interface{}{p.Name, p.Age}
}

// Validate validates the person row
func (p Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if p.Age < 0 {
		return errors.New("age cannot be negative")
	}
	return nil
}

// SampleTable is an ordered set of people
type SampleTable []Person

// NewSampleTable returns the fixed three-row sample
func NewSampleTable() SampleTable {
	return SampleTable{
		{Name: "Alice", Age: 25},
		{Name: "Bob", Age: 30},
		{Name: "Charlie", Age: 35},
	}
}

// Split converts the table to split orientation with a 0-based index
func (t SampleTable) Split() *SplitFrame {
	frame := &SplitFrame{
		Columns: append([]string(nil), PersonColumns...),
		Index:   make([]int, len(t)),
		Data:    make([][]interface{}, len(t)),
	}
	for i, p := range t {
		frame.Index[i] = i
		frame.Data[i] = p.Values()
	}
	return frame
}
