package repository

import (
	"context"
	"sort"

	"motoshop/internal/domain/entities"
	"motoshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBaysTableName = "bays"

type bayItem struct {
	ID         string `dynamodbav:"id"`
	EstimateID string `dynamodbav:"estimate_id,omitempty"`
	Status     string `dynamodbav:"status"`
}

// BayDynamoRepository persists the workshop bay board in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The board is tiny (a handful of bays), so List scans the table and
// SaveBoard writes every bay in a single transaction. The transaction keeps a
// swap from ever being half-applied, which would show one estimate in two
// bays.

type BayDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBayRepository = (*BayDynamoRepository)(nil)

func NewBayDynamoRepository(ddb *dynamodb.Client) *BayDynamoRepository {
	return &BayDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BAYS_TABLE", defaultBaysTableName),
	}
}

func (r *BayDynamoRepository) List(ctx context.Context) ([]entities.Bay, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	bays := make([]entities.Bay, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bayItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		bays = append(bays, entities.Bay{ID: it.ID, EstimateID: it.EstimateID, Status: entities.BayStatus(it.Status)})
	}
	// Scan order is unspecified; the board renders in bay id order.
	sort.Slice(bays, func(i, j int) bool { return bays[i].ID < bays[j].ID })
	return bays, nil
}

func (r *BayDynamoRepository) SaveBoard(ctx context.Context, bays []entities.Bay) error {
	writes := make([]types.TransactWriteItem, 0, len(bays))
	for _, b := range bays {
		av, err := attributevalue.MarshalMap(bayItem{ID: b.ID, EstimateID: b.EstimateID, Status: string(b.Status)})
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item:      av,
			},
		})
	}
	if len(writes) == 0 {
		return nil
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}
