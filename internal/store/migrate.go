package store

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	entsqlann "entgo.io/ent/dialect/entsql"
	entsql "entgo.io/ent/dialect/sql"
	sqlschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"github.com/abhisek/brainbytes/ent/schema"
)

// tables converts the ent schema definitions into migration tables. It
// reads the same descriptors ent's code generator would, so the schema
// package stays the single source of truth for column names and types.
func tables(defs ...ent.Interface) ([]*sqlschema.Table, error) {
	out := make([]*sqlschema.Table, 0, len(defs))
	for _, def := range defs {
		t, err := table(def)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func table(def ent.Interface) (*sqlschema.Table, error) {
	name, err := tableName(def)
	if err != nil {
		return nil, err
	}

	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range def.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, def.Fields()...)
	indexes = append(indexes, def.Indexes()...)

	t := &sqlschema.Table{Name: name}
	byName := make(map[string]*sqlschema.Column, len(fields)+1)

	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, d.Name, d.Err)
		}
		col := &sqlschema.Column{
			Name:     columnName(d),
			Type:     d.Info.Type,
			Size:     int64(d.Size),
			Unique:   d.Unique,
			Nullable: d.Optional,
		}
		if col.Name == "id" {
			col.Unique = false
			t.PrimaryKey = []*sqlschema.Column{col}
		}
		t.Columns = append(t.Columns, col)
		byName[col.Name] = col
	}

	if t.PrimaryKey == nil {
		id := &sqlschema.Column{Name: "id", Type: field.TypeInt, Increment: true}
		t.Columns = append([]*sqlschema.Column{id}, t.Columns...)
		t.PrimaryKey = []*sqlschema.Column{id}
		byName["id"] = id
	}

	for _, ix := range indexes {
		d := ix.Descriptor()
		cols := make([]*sqlschema.Column, 0, len(d.Fields))
		for _, fname := range d.Fields {
			c, ok := byName[fname]
			if !ok {
				return nil, fmt.Errorf("%s: index on unknown field %q", name, fname)
			}
			cols = append(cols, c)
		}
		ixName := d.StorageKey
		if ixName == "" {
			ixName = name + "_" + strings.Join(d.Fields, "_")
		}
		t.Indexes = append(t.Indexes, &sqlschema.Index{
			Name:    ixName,
			Unique:  d.Unique,
			Columns: cols,
		})
	}
	return t, nil
}

func columnName(d *field.Descriptor) string {
	if d.StorageKey != "" {
		return d.StorageKey
	}
	return d.Name
}

// tableName reads the table name from the schema's entsql annotation.
func tableName(def ent.Interface) (string, error) {
	for _, a := range def.Annotations() {
		if ant, ok := a.(entsqlann.Annotation); ok && ant.Table != "" {
			return ant.Table, nil
		}
	}
	return "", fmt.Errorf("%T: missing entsql table annotation", def)
}

// migrate creates or extends every table the schema package declares.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	defs, err := tables(schema.Tables()...)
	if err != nil {
		return fmt.Errorf("build tables: %w", err)
	}
	m, err := sqlschema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, defs...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
