// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const stateTable = "kv_state"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetStateQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(stateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildSetStateQuery upserts key; updated_at tracks the last write.
func buildSetStateQuery(key, value string) (string, []any, error) {
	return psql.
		Insert(stateTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteStateQuery(key string) (string, []any, error) {
	return psql.
		Delete(stateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
