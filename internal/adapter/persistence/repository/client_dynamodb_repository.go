package repository

import (
	"context"
	"errors"
	"time"

	"solosync/internal/domain/entities"
	"solosync/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type historyEventItem struct {
	Event string `dynamodbav:"event"`
	Date  string `dynamodbav:"date"`
}

type clientItem struct {
	Name    string             `dynamodbav:"name"`
	ID      string             `dynamodbav:"id"`
	Email   string             `dynamodbav:"email,omitempty"`
	Company string             `dynamodbav:"company,omitempty"`
	History []historyEventItem `dynamodbav:"history"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: name (string)
//
// Name is the PK because intake resolves clients by exact name. That makes
// find-or-create a single conditional put instead of a racy read-then-write:
// two concurrent intakes for the same new name collapse into one client.
type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) FindOrCreate(ctx context.Context, c entities.Client) (entities.Client, bool, error) {
	it := toClientItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Client{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#name)"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Lost the race or the client already existed; reuse it as-is.
			existing, getErr := r.GetByName(ctx, c.Name)
			if getErr != nil {
				return entities.Client{}, false, getErr
			}
			return existing, false, nil
		}
		return entities.Client{}, false, err
	}
	return c, true, nil
}

func (r *ClientDynamoRepository) GetByName(ctx context.Context, name string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Client, 0, len(out.Items))
	for _, raw := range out.Items {
		var it clientItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromClientItem(it))
	}
	return items, nil
}

func toClientItem(c entities.Client) clientItem {
	history := make([]historyEventItem, 0, len(c.History))
	for _, h := range c.History {
		history = append(history, historyEventItem{
			Event: h.Event,
			Date:  h.Date.UTC().Format(time.RFC3339Nano),
		})
	}
	return clientItem{
		Name:    c.Name,
		ID:      c.ID,
		Email:   c.Email,
		Company: c.Company,
		History: history,
	}
}

func fromClientItem(it clientItem) entities.Client {
	history := make([]entities.HistoryEvent, 0, len(it.History))
	for _, h := range it.History {
		date, _ := time.Parse(time.RFC3339Nano, h.Date)
		history = append(history, entities.HistoryEvent{Event: h.Event, Date: date})
	}
	return entities.Client{
		ID:      it.ID,
		Name:    it.Name,
		Email:   it.Email,
		Company: it.Company,
		History: history,
	}
}
