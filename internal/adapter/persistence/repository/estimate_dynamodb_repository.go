package repository

import (
	"context"
	"errors"
	"time"

	"motoshop/internal/domain/entities"
	"motoshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesPhoneIndex       = "customer_phone-index"
)

type partItem struct {
	Name     string  `dynamodbav:"name"`
	Price    float64 `dynamodbav:"price"`
	Quantity int     `dynamodbav:"quantity"`
}

type laborItem struct {
	Description string  `dynamodbav:"description"`
	Rate        float64 `dynamodbav:"rate"`
	Hours       float64 `dynamodbav:"hours"`
}

type paymentItem struct {
	ID     string  `dynamodbav:"id"`
	Amount float64 `dynamodbav:"amount"`
	Method string  `dynamodbav:"method"`
	Date   string  `dynamodbav:"date"`
}

type estimateItem struct {
	ID             string        `dynamodbav:"id"`
	Number         string        `dynamodbav:"number"`
	CustomerName   string        `dynamodbav:"customer_name"`
	CustomerPhone  string        `dynamodbav:"customer_phone,omitempty"`
	VehicleModel   string        `dynamodbav:"vehicle_model,omitempty"`
	Status         string        `dynamodbav:"status"`
	Parts          []partItem    `dynamodbav:"parts"`
	Labor          []laborItem   `dynamodbav:"labor"`
	PartsDiscount  float64       `dynamodbav:"parts_discount"`
	LaborDiscount  float64       `dynamodbav:"labor_discount"`
	DiscountSource string        `dynamodbav:"discount_source,omitempty"`
	Payments       []paymentItem `dynamodbav:"payments"`
	CreatedAt      string        `dynamodbav:"created_at"`
	UpdatedAt      string        `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_phone-index (PK: customer_phone)
//
// Estimates are written as whole documents; the loyalty history query rides
// the phone GSI.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) ListByCustomerPhone(ctx context.Context, phone string) ([]entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesPhoneIndex),
		KeyConditionExpression: aws.String("customer_phone = :phone"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone": &types.AttributeValueMemberS{Value: phone},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Estimate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEstimateItem(it))
	}
	return items, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	it := estimateItem{
		ID:             e.ID,
		Number:         e.Number,
		CustomerName:   e.CustomerName,
		CustomerPhone:  e.CustomerPhone,
		VehicleModel:   e.VehicleModel,
		Status:         string(e.Status),
		PartsDiscount:  e.PartsDiscount,
		LaborDiscount:  e.LaborDiscount,
		DiscountSource: string(e.DiscountSource),
		Parts:          make([]partItem, 0, len(e.Parts)),
		Labor:          make([]laborItem, 0, len(e.Labor)),
		Payments:       make([]paymentItem, 0, len(e.Payments)),
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, p := range e.Parts {
		it.Parts = append(it.Parts, partItem{Name: p.Name, Price: p.Price, Quantity: p.Quantity})
	}
	for _, l := range e.Labor {
		it.Labor = append(it.Labor, laborItem{Description: l.Description, Rate: l.Rate, Hours: l.Hours})
	}
	for _, p := range e.Payments {
		it.Payments = append(it.Payments, paymentItem{ID: p.ID, Amount: p.Amount, Method: p.Method, Date: p.Date.UTC().Format(time.RFC3339Nano)})
	}
	return it
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	e := entities.Estimate{
		ID:             it.ID,
		Number:         it.Number,
		CustomerName:   it.CustomerName,
		CustomerPhone:  it.CustomerPhone,
		VehicleModel:   it.VehicleModel,
		Status:         entities.EstimateStatus(it.Status),
		PartsDiscount:  it.PartsDiscount,
		LaborDiscount:  it.LaborDiscount,
		DiscountSource: entities.DiscountSource(it.DiscountSource),
		Parts:          make([]entities.Part, 0, len(it.Parts)),
		Labor:          make([]entities.Labor, 0, len(it.Labor)),
		Payments:       make([]entities.Payment, 0, len(it.Payments)),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	for _, p := range it.Parts {
		e.Parts = append(e.Parts, entities.Part{Name: p.Name, Price: p.Price, Quantity: p.Quantity})
	}
	for _, l := range it.Labor {
		e.Labor = append(e.Labor, entities.Labor{Description: l.Description, Rate: l.Rate, Hours: l.Hours})
	}
	for _, p := range it.Payments {
		date, _ := time.Parse(time.RFC3339Nano, p.Date)
		e.Payments = append(e.Payments, entities.Payment{ID: p.ID, Amount: p.Amount, Method: p.Method, Date: date})
	}
	return e
}
