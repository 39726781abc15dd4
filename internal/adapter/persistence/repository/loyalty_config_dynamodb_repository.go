package repository

import (
	"context"
	"encoding/json"

	"motoshop/internal/domain/entities"
	"motoshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConfigTableName = "shop_config"
	loyaltyConfigItemID    = "loyalty"
)

// LoyaltyConfigDynamoRepository stores the loyalty configuration as a single
// opaque JSON blob under a fixed key. The blob may be partial; merging over
// the defaults is the caller's job (entities.MergeLoyaltyConfig).
//
// Table requirements:
//   - PK: id (string)

type LoyaltyConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILoyaltyConfigRepository = (*LoyaltyConfigDynamoRepository)(nil)

func NewLoyaltyConfigDynamoRepository(ddb *dynamodb.Client) *LoyaltyConfigDynamoRepository {
	return &LoyaltyConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONFIG_TABLE", defaultConfigTableName),
	}
}

func (r *LoyaltyConfigDynamoRepository) Get(ctx context.Context) (entities.LoyaltyConfig, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: loyaltyConfigItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LoyaltyConfig{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.LoyaltyConfig{}, false, nil
	}

	blob, ok := out.Item["config"].(*types.AttributeValueMemberS)
	if !ok || blob.Value == "" {
		return entities.LoyaltyConfig{}, false, nil
	}

	var cfg entities.LoyaltyConfig
	if err := json.Unmarshal([]byte(blob.Value), &cfg); err != nil {
		return entities.LoyaltyConfig{}, false, err
	}
	return cfg, true, nil
}

func (r *LoyaltyConfigDynamoRepository) Put(ctx context.Context, cfg entities.LoyaltyConfig) error {
	blob, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"id":     &types.AttributeValueMemberS{Value: loyaltyConfigItemID},
			"config": &types.AttributeValueMemberS{Value: string(blob)},
		},
	})
	return err
}
