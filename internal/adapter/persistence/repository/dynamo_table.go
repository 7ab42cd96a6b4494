package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

var (
	ErrInvalidRecord  = errors.New("invalid record")
	ErrRecordExists   = errors.New("record already exists")
	ErrRecordNotFound = errors.New("record not found")
)

// Validator rejects an entity before it is returned from a scan or written with put.
type Validator[E any] func(E) error

// dynamoTable maps one DynamoDB table of items I to domain entities E.
type dynamoTable[I any, E any] struct {
	ddb        DynamoAPI
	name       string
	fromItem   func(I) E
	toItem     func(E) I
	validators []Validator[E]
	logger     *zap.Logger
}

func newDynamoTable[I any, E any](ddb DynamoAPI, name string, fromItem func(I) E, toItem func(E) I, logger *zap.Logger, validators ...Validator[E]) *dynamoTable[I, E] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &dynamoTable[I, E]{
		ddb:        ddb,
		name:       name,
		fromItem:   fromItem,
		toItem:     toItem,
		validators: validators,
		logger:     logger,
	}
}

func (t *dynamoTable[I, E]) validate(e E) error {
	for _, v := range t.validators {
		if err := v(e); err != nil {
			return err
		}
	}
	return nil
}

// ScanAll reads the whole table. Items that fail to decode or validate are skipped and logged.
func (t *dynamoTable[I, E]) ScanAll(ctx context.Context) ([]E, error) {
	p := dynamodb.NewScanPaginator(t.ddb, &dynamodb.ScanInput{TableName: aws.String(t.name)})

	out := make([]E, 0)
	skipped := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		for _, raw := range page.Items {
			e, err := t.decode(raw)
			if err != nil {
				skipped++
				t.logger.Debug("[persistence][dynamodb] item skipped", zap.String("table", t.name), zap.Error(err))
				continue
			}
			out = append(out, e)
		}
	}
	if skipped > 0 {
		t.logger.Warn("[persistence][dynamodb] invalid items skipped", zap.String("table", t.name), zap.Int("skipped", skipped))
	}
	return out, nil
}

// Get returns ok=false when the key does not exist.
func (t *dynamoTable[I, E]) Get(ctx context.Context, key map[string]types.AttributeValue) (E, bool, error) {
	var zero E
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, false, fmt.Errorf("get %s: %w", t.name, err)
	}
	if len(out.Item) == 0 {
		return zero, false, nil
	}
	var it I
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return zero, false, fmt.Errorf("decode %s item: %w", t.name, err)
	}
	return t.fromItem(it), true, nil
}

// Put writes e. With createOnly set an existing id fails with ErrRecordExists.
func (t *dynamoTable[I, E]) Put(ctx context.Context, e E, createOnly bool) error {
	if err := t.validate(e); err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(t.toItem(e))
	if err != nil {
		return fmt.Errorf("encode %s item: %w", t.name, err)
	}

	in := &dynamodb.PutItemInput{TableName: aws.String(t.name), Item: av}
	if createOnly {
		in.ConditionExpression = aws.String("attribute_not_exists(#id)")
		in.ExpressionAttributeNames = map[string]string{"#id": "id"}
	}
	if _, err := t.ddb.PutItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrRecordExists
		}
		return fmt.Errorf("put %s: %w", t.name, err)
	}
	return nil
}

func (t *dynamoTable[I, E]) decode(raw map[string]types.AttributeValue) (E, error) {
	var zero E
	var it I
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return zero, err
	}
	e := t.fromItem(it)
	if err := t.validate(e); err != nil {
		return zero, err
	}
	return e, nil
}

func (t *dynamoTable[I, E]) decodeAll(raws []map[string]types.AttributeValue) ([]E, error) {
	out := make([]E, 0, len(raws))
	for _, raw := range raws {
		var it I
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, fmt.Errorf("decode %s item: %w", t.name, err)
		}
		out = append(out, t.fromItem(it))
	}
	return out, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRecord, fmt.Sprintf(format, args...))
}
