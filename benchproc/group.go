// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"sort"

	"github.com/aclements/go-gg/table"
)

// A Group is the set of normalized records that share a Key.
type Group struct {
	Key Key

	// Table holds the group's rows in population order. The key
	// fields are constant columns.
	Table *table.Table
}

// Len returns the number of records in g.
func (g *Group) Len() int {
	if g == nil || g.Table == nil {
		return 0
	}
	return g.Table.Len()
}

// Records returns the rows of g in order.
func (g *Group) Records() []Row {
	return Rows(g.Table)
}

// Indexes returns the document positions of g's records.
func (g *Group) Indexes() []int {
	return g.Table.MustColumn(ColIndex).([]int)
}

// GroupBy partitions the rows of t by the exact values of fields. The
// first field is the subject of each group and the rest are its
// configuration. Every row lands in exactly one group, and rows keep
// their relative order within a group.
//
// Groups are returned in ascending key order, as defined by Key.Less.
//
// If t lacks one of fields, GroupBy returns a *SchemaError. GroupBy
// does not modify t.
func GroupBy(t *table.Table, fields ...string) ([]*Group, error) {
	fields = append([]string(nil), fields...)
	for _, f := range fields {
		if t.Column(f) == nil {
			idx := -1
			if col, ok := t.Column(ColIndex).([]int); ok && len(col) > 0 {
				idx = col[0]
			}
			return nil, &SchemaError{Stage: "group", Index: idx, Field: f, Msg: "missing grouping field"}
		}
	}
	if t.Len() == 0 {
		return nil, nil
	}

	g := table.GroupBy(t, fields...)

	var groups []*Group
	for _, gid := range g.Tables() {
		sub := g.Table(gid)
		if sub.Len() == 0 {
			continue
		}
		key := Key{Fields: fields, Values: make([]interface{}, len(fields))}
		for i, f := range fields {
			// table.GroupBy turns grouping columns into
			// constants.
			key.Values[i], _ = sub.Const(f)
		}
		groups = append(groups, &Group{Key: key, Table: sub})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Key.Less(groups[j].Key)
	})
	return groups, nil
}
