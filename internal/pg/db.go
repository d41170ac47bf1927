package pg

import (
	"fmt"
	"slices"
)

// DB is the table catalog built by applying DDL migrations in order.
type DB struct {
	Tables       []*Table
	TablesByName map[TableName]*Table
}

type TableName struct {
	Name   string
	Schema string
}

// Table holds a created table and its columns in creation order.
type Table struct {
	Name          TableName
	Columns       []*Column
	ColumnsByName map[string]*Column
}

// Column represents a table column.
type Column struct {
	Name string
	Type DataType
}

// DataType represents a postgres data type. For example `INT[]`
// produces a DataType `{Name: "int4", Array: true}`.
type DataType struct {
	Name    string
	Schema  *string
	NotNull bool
	Array   bool
}

func NewDB() *DB {
	return &DB{
		Tables:       make([]*Table, 0),
		TablesByName: make(map[TableName]*Table),
	}
}

func NewTable(name TableName) *Table {
	return &Table{
		Name:          name,
		Columns:       make([]*Column, 0),
		ColumnsByName: make(map[string]*Column),
	}
}

func NewTableName(name string, schema ...string) TableName {
	var t TableName

	t.Name = name
	if len(schema) > 0 {
		t.Schema = schema[0]
	}

	return t
}

func (db *DB) AddTable(table *Table) {
	db.TablesByName[table.Name] = table
	db.Tables = append(db.Tables, table)
}

func (db *DB) RemoveTable(name TableName) {
	delete(db.TablesByName, name)
	db.Tables = slices.DeleteFunc(db.Tables, func(t *Table) bool { return t.Name == name })
}

func (db *DB) RenameTable(name TableName, newName TableName) {
	t := db.TablesByName[name]
	delete(db.TablesByName, name)

	t.Name = newName
	db.TablesByName[newName] = t
}

func (t *Table) AddColumn(col *Column) {
	t.ColumnsByName[col.Name] = col
	t.Columns = append(t.Columns, col)
}

func (t *Table) RemoveColumn(name string) {
	delete(t.ColumnsByName, name)
	t.Columns = slices.DeleteFunc(t.Columns, func(c *Column) bool { return c.Name == name })
}

func (t *Table) RenameColumn(name string, newName string) {
	c := t.ColumnsByName[name]
	delete(t.ColumnsByName, name)

	c.Name = newName
	t.ColumnsByName[newName] = c
}

func (n TableName) HasSchema() bool {
	return len(n.Schema) != 0
}

func (n TableName) String() string {
	if n.HasSchema() {
		return fmt.Sprintf("%s.%s", n.Schema, n.Name)
	}

	return n.Name
}
