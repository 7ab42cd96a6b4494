package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps tables in memory, keyed by the "id" attribute. It understands the handful
// of expressions the repositories send, nothing more.
type fakeDynamo struct {
	mu           sync.Mutex
	tables       map[string]map[string]map[string]types.AttributeValue
	pageSize     int
	scans        int
	failScan     error
	failTransact error
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func keyOf(item map[string]types.AttributeValue) string {
	switch v := item["id"].(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) put(table string, item map[string]types.AttributeValue) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.table(table)[keyOf(item)] = item
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))
	k := keyOf(in.Item)
	current, exists := t[k]
	if !conditionHolds(aws.ToString(in.ConditionExpression), current, exists, in.ExpressionAttributeNames, in.ExpressionAttributeValues) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	t[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))
	k := keyOf(in.Key)
	item, exists := t[k]
	if !conditionHolds(aws.ToString(in.ConditionExpression), item, exists, in.ExpressionAttributeNames, in.ExpressionAttributeValues) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("condition")}
	}
	item, updated, err := applyUpdate(item, in.Key, aws.ToString(in.UpdateExpression), in.ExpressionAttributeNames, in.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}
	t[k] = item

	out := &dynamodb.UpdateItemOutput{}
	switch in.ReturnValues {
	case types.ReturnValueAllNew:
		out.Attributes = item
	case types.ReturnValueUpdatedNew:
		out.Attributes = updated
	}
	return out, nil
}

// TransactWriteItems checks every condition before writing anything, like DynamoDB does.
func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTransact != nil {
		return nil, f.failTransact
	}

	reasons := make([]types.CancellationReason, len(in.TransactItems))
	cancelled := false
	for i, ti := range in.TransactItems {
		reasons[i] = types.CancellationReason{Code: aws.String("None")}
		var (
			table, cond string
			key         map[string]types.AttributeValue
			names       map[string]string
			values      map[string]types.AttributeValue
		)
		switch {
		case ti.Put != nil:
			table, cond, key = aws.ToString(ti.Put.TableName), aws.ToString(ti.Put.ConditionExpression), ti.Put.Item
			names, values = ti.Put.ExpressionAttributeNames, ti.Put.ExpressionAttributeValues
		case ti.Update != nil:
			table, cond, key = aws.ToString(ti.Update.TableName), aws.ToString(ti.Update.ConditionExpression), ti.Update.Key
			names, values = ti.Update.ExpressionAttributeNames, ti.Update.ExpressionAttributeValues
		default:
			return nil, fmt.Errorf("fake: unsupported transact item %d", i)
		}
		item, exists := f.table(table)[keyOf(key)]
		if !conditionHolds(cond, item, exists, names, values) {
			reasons[i].Code = aws.String("ConditionalCheckFailed")
			cancelled = true
		}
	}
	if cancelled {
		return nil, &types.TransactionCanceledException{
			Message:             aws.String("Transaction cancelled"),
			CancellationReasons: reasons,
		}
	}

	for _, ti := range in.TransactItems {
		if ti.Put != nil {
			f.table(aws.ToString(ti.Put.TableName))[keyOf(ti.Put.Item)] = ti.Put.Item
			continue
		}
		u := ti.Update
		t := f.table(aws.ToString(u.TableName))
		k := keyOf(u.Key)
		item, _, err := applyUpdate(t[k], u.Key, aws.ToString(u.UpdateExpression), u.ExpressionAttributeNames, u.ExpressionAttributeValues)
		if err != nil {
			return nil, err
		}
		t[k] = item
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lr := strings.Split(aws.ToString(in.KeyConditionExpression), "=")
	attr := strings.TrimSpace(lr[0])
	want := in.ExpressionAttributeValues[strings.TrimSpace(lr[1])].(*types.AttributeValueMemberS).Value

	out := &dynamodb.QueryOutput{}
	for _, k := range f.sortedKeys(aws.ToString(in.TableName)) {
		item := f.tables[aws.ToString(in.TableName)][k]
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok && s.Value == want {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

// Scan pages through the table in key order, pageSize items at a time.
func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans++
	if f.failScan != nil {
		return nil, f.failScan
	}
	name := aws.ToString(in.TableName)
	keys := f.sortedKeys(name)

	start := 0
	if in.ExclusiveStartKey != nil {
		last := keyOf(in.ExclusiveStartKey)
		for i, k := range keys {
			if k == last {
				start = i + 1
				break
			}
		}
	}
	end := len(keys)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}

	out := &dynamodb.ScanOutput{}
	for _, k := range keys[start:end] {
		out.Items = append(out.Items, f.tables[name][k])
	}
	if end < len(keys) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": f.tables[name][keys[end-1]]["id"]}
	}
	return out, nil
}

func (f *fakeDynamo) sortedKeys(table string) []string {
	keys := make([]string, 0, len(f.tables[table]))
	for k := range f.tables[table] {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.ParseInt(keys[i], 10, 64)
		b, errB := strconv.ParseInt(keys[j], 10, 64)
		if errA == nil && errB == nil {
			return a < b
		}
		return keys[i] < keys[j]
	})
	return keys
}

// conditionHolds evaluates clauses joined by AND: attribute_exists(#a),
// attribute_not_exists(#a) and #a <> :v on string attributes.
func conditionHolds(cond string, item map[string]types.AttributeValue, exists bool, names map[string]string, values map[string]types.AttributeValue) bool {
	if cond == "" {
		return true
	}
	for _, clause := range strings.Split(cond, " AND ") {
		clause = strings.TrimSpace(clause)
		switch {
		case strings.HasPrefix(clause, "attribute_not_exists"):
			if exists {
				return false
			}
		case strings.HasPrefix(clause, "attribute_exists"):
			if !exists {
				return false
			}
		case strings.Contains(clause, "<>"):
			lr := strings.Split(clause, "<>")
			attr := names[strings.TrimSpace(lr[0])]
			want, _ := values[strings.TrimSpace(lr[1])].(*types.AttributeValueMemberS)
			got, _ := item[attr].(*types.AttributeValueMemberS)
			if got != nil && want != nil && got.Value == want.Value {
				return false
			}
		default:
			panic("fake: unsupported condition " + clause)
		}
	}
	return true
}

// applyUpdate runs "ADD #a :v" or "SET #a = :v, #b = :w" against a copy of item.
func applyUpdate(item, key map[string]types.AttributeValue, expr string, names map[string]string, values map[string]types.AttributeValue) (map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
	next := map[string]types.AttributeValue{}
	for k, v := range key {
		next[k] = v
	}
	for k, v := range item {
		next[k] = v
	}

	updated := map[string]types.AttributeValue{}
	switch {
	case strings.HasPrefix(expr, "ADD "):
		parts := strings.Fields(strings.TrimPrefix(expr, "ADD "))
		attr := names[parts[0]]
		delta, _ := strconv.ParseInt(values[parts[1]].(*types.AttributeValueMemberN).Value, 10, 64)
		current := int64(0)
		if n, ok := next[attr].(*types.AttributeValueMemberN); ok {
			current, _ = strconv.ParseInt(n.Value, 10, 64)
		}
		v := &types.AttributeValueMemberN{Value: strconv.FormatInt(current+delta, 10)}
		next[attr] = v
		updated[attr] = v
	case strings.HasPrefix(expr, "SET "):
		for _, assignment := range strings.Split(strings.TrimPrefix(expr, "SET "), ",") {
			lr := strings.Split(assignment, "=")
			attr := names[strings.TrimSpace(lr[0])]
			v := values[strings.TrimSpace(lr[1])]
			next[attr] = v
			updated[attr] = v
		}
	default:
		return nil, nil, fmt.Errorf("fake: unsupported update %q", expr)
	}
	return next, updated, nil
}

var errFakeUnavailable = errors.New("fake: service unavailable")
