// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchproc provides tools for filtering, normalizing, and
// grouping benchmark results.
//
// The typical steps for processing a benchmark document are:
//
// 1. Read a document with benchfmt.ReadFile or benchfmt.Reader.
//
// 2. Drop harness-generated records with a Filter. ExcludeErrors drops
// results whose run failed, and ExcludeAggregates drops summary rows
// (mean, median, stddev) that the harness computes over repetitions.
// Filtering happens before anything else looks at the data, so no
// excluded record can reach a group.
//
// 3. Normalize the surviving records against a closed set of Schemas.
// Each Schema describes one shape of result: which records it
// selects and which integral dimensions those records carry.
// Normalize splits compound names into benchmark and testcase,
// converts throughput to MB/s, casts dimensions to int, and formats
// byte sizes as labels. The result is one Population per Schema,
// backed by a github.com/aclements/go-gg/table.Table.
//
// 4. Partition a Population with GroupBy. The first grouping field is
// the subject of the group and the rest are its configuration. Groups
// are enumerated in ascending key order.
//
// Every step is read-only over its input. Failures are reported as
// *SchemaError values that name the stage and the offending record.
package benchproc
