package postgres

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// psql builds statements with PostgreSQL's $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// encodeMetadata marshals structured metadata for the jsonb column.
// Empty metadata is stored as NULL.
func encodeMetadata(md map[string]interface{}) (interface{}, error) {
	if len(md) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(md)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return b, nil
}

// decodeMetadata unmarshals the jsonb column back into structured metadata.
// Stored metadata is only ever parsed as JSON, never evaluated.
func decodeMetadata(raw []byte) (map[string]interface{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var md map[string]interface{}
	if err := json.Unmarshal(raw, &md); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return md, nil
}
