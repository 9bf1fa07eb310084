package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dwguild/backend/internal/database"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// convertRecordID converts a SurrealDB ID of any driver shape to a string
func convertRecordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			if inner, ok := v["id"].(string); ok {
				return tb + ":" + inner
			}
		}
	}
	return fmt.Sprintf("%v", id)
}

// normalizeRecord unwraps one record from a store response and stringifies
// its id field
func normalizeRecord(result interface{}) (map[string]interface{}, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through the response wrapper {status: "OK", result: [...]}
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	if id, ok := data["id"]; ok {
		data["id"] = convertRecordID(id)
	}
	return data, nil
}

// decodeRecord converts a normalized record into a model struct through a
// JSON round trip
func decodeRecord[T any](data map[string]interface{}) (*T, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var entity T
	if err := json.Unmarshal(jsonBytes, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// extractListResults flattens a Query response into the raw record maps
func extractListResults(results []interface{}) []interface{} {
	if len(results) == 0 {
		return nil
	}
	if resp, ok := results[0].(map[string]interface{}); ok {
		if resultData, ok := resp["result"].([]interface{}); ok {
			return resultData
		}
	}
	return results
}
