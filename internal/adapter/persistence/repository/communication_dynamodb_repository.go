package repository

import (
	"context"
	"time"

	"solosync/internal/domain/entities"
	"solosync/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultCommunicationsTableName = "communications"

type communicationItem struct {
	ID        string `dynamodbav:"id"`
	Platform  string `dynamodbav:"platform"`
	Content   string `dynamodbav:"content"`
	Timestamp string `dynamodbav:"timestamp"`
}

// CommunicationDynamoRepository persists the append-only raw message log.
//
// Table requirements:
//   - PK: id (string)
//
// No update or delete operations exist: rows are written once by intake and
// only ever read back.
type CommunicationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommunicationRepository = (*CommunicationDynamoRepository)(nil)

func NewCommunicationDynamoRepository(ddb *dynamodb.Client) *CommunicationDynamoRepository {
	return &CommunicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMMUNICATIONS_TABLE", defaultCommunicationsTableName),
	}
}

func (r *CommunicationDynamoRepository) Create(ctx context.Context, c entities.Communication) (entities.Communication, error) {
	it := toCommunicationItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Communication{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Communication{}, err
	}
	return c, nil
}

func (r *CommunicationDynamoRepository) List(ctx context.Context) ([]entities.Communication, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Communication, 0, len(out.Items))
	for _, raw := range out.Items {
		var it communicationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCommunicationItem(it))
	}
	return items, nil
}

func toCommunicationItem(c entities.Communication) communicationItem {
	return communicationItem{
		ID:        c.ID,
		Platform:  c.Platform,
		Content:   c.Content,
		Timestamp: c.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func fromCommunicationItem(it communicationItem) entities.Communication {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.Communication{
		ID:        it.ID,
		Platform:  it.Platform,
		Content:   it.Content,
		Timestamp: ts,
	}
}
