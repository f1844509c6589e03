package repository

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func intToString(v int) string {
	return strconv.Itoa(v)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// batchGetLimit is DynamoDB's per-request BatchGetItem key cap.
const batchGetLimit = 100

// batchGetByIDs fetches every row whose "id" key is in ids, chunking to the
// BatchGetItem limit and draining unprocessed keys. From the callers' point of
// view this is one batched fetch against one collection.
func batchGetByIDs(ctx context.Context, ddb *dynamodb.Client, tableName string, ids []string) ([]map[string]types.AttributeValue, error) {
	items := make([]map[string]types.AttributeValue, 0, len(ids))

	for start := 0; start < len(ids); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(ids) {
			end = len(ids)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		request := map[string]types.KeysAndAttributes{tableName: {Keys: keys}}
		for len(request) > 0 {
			out, err := ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			items = append(items, out.Responses[tableName]...)
			request = out.UnprocessedKeys
		}
	}
	return items, nil
}

// inOperandLimit is DynamoDB's per-IN-operator operand cap.
const inOperandLimit = 100

// inExpression builds an "attr IN (:v0, :v1, ...)" filter over values,
// chunking into OR-joined IN clauses past the operand cap.
func inExpression(attr string, values []string) (string, map[string]types.AttributeValue) {
	exprValues := make(map[string]types.AttributeValue, len(values))
	clauses := make([]string, 0, (len(values)+inOperandLimit-1)/inOperandLimit)

	for start := 0; start < len(values); start += inOperandLimit {
		end := start + inOperandLimit
		if end > len(values) {
			end = len(values)
		}

		placeholders := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			ph := fmt.Sprintf(":v%d", i)
			placeholders = append(placeholders, ph)
			exprValues[ph] = &types.AttributeValueMemberS{Value: values[i]}
		}
		clauses = append(clauses, fmt.Sprintf("%s IN (%s)", attr, strings.Join(placeholders, ", ")))
	}

	if len(clauses) == 1 {
		return clauses[0], exprValues
	}
	return "(" + strings.Join(clauses, " OR ") + ")", exprValues
}

// scanAll drains a filtered Scan, following pagination.
func scanAll(ctx context.Context, ddb *dynamodb.Client, input *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// queryAll drains a Query, following pagination.
func queryAll(ctx context.Context, ddb *dynamodb.Client, input *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
