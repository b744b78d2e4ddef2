package repository

import (
	"context"
	"errors"
	"time"

	"campus_trade/internal/domain/entities"
	"campus_trade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName = "products"
	productsSellerIDIndex    = "seller_id-index"
)

type productItem struct {
	ID              string   `dynamodbav:"id"`
	Name            string   `dynamodbav:"name"`
	Description     string   `dynamodbav:"description"`
	Price           string   `dynamodbav:"price"`
	Condition       string   `dynamodbav:"condition"`
	Media           []string `dynamodbav:"media"`
	School          string   `dynamodbav:"school"`
	SellerID        string   `dynamodbav:"seller_id"`
	SubCategoryID   string   `dynamodbav:"sub_category_id"`
	SubCategoryName string   `dynamodbav:"sub_category_name"`
	Status          string   `dynamodbav:"status"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: seller_id-index (PK: seller_id)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	it := toProductItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProducts(out.Items)
}

func (r *ProductDynamoRepository) ListBySellerID(ctx context.Context, sellerID string) ([]entities.Product, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(productsSellerIDIndex),
		KeyConditionExpression: aws.String("seller_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sellerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProducts(out.Items)
}

// UpdateStatusFromPending flips the status only while the product is still
// pending, so a payment confirmation can never override an interim admin
// decision. Zero value on a failed condition.
func (r *ProductDynamoRepository) UpdateStatusFromPending(ctx context.Context, id string, status entities.ProductStatus) (entities.Product, error) {
	return r.updateStatus(ctx, id, status, aws.String("attribute_exists(#id) AND #status = :pending"), map[string]types.AttributeValue{
		":pending": &types.AttributeValueMemberS{Value: string(entities.ProductStatusPending)},
	})
}

// UpdateStatus is the unconditional admin override.
func (r *ProductDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProductStatus) (entities.Product, error) {
	return r.updateStatus(ctx, id, status, aws.String("attribute_exists(#id)"), nil)
}

func (r *ProductDynamoRepository) updateStatus(ctx context.Context, id string, status entities.ProductStatus, condition *string, extraValues map[string]types.AttributeValue) (entities.Product, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	for k, v := range extraValues {
		values[k] = v
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       condition,
		UpdateExpression:          aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func unmarshalProducts(raws []map[string]types.AttributeValue) ([]entities.Product, error) {
	items := make([]entities.Product, 0, len(raws))
	for _, raw := range raws {
		var it productItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProductItem(it))
	}
	return items, nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           floatToString(p.Price),
		Condition:       string(p.Condition),
		Media:           p.Media,
		School:          p.School,
		SellerID:        p.SellerID,
		SubCategoryID:   p.SubCategoryID,
		SubCategoryName: p.SubCategoryName,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProductItem(it productItem) entities.Product {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Product{
		ID:              it.ID,
		Name:            it.Name,
		Description:     it.Description,
		Price:           stringToFloat(it.Price),
		Condition:       entities.ProductCondition(it.Condition),
		Media:           it.Media,
		School:          it.School,
		SellerID:        it.SellerID,
		SubCategoryID:   it.SubCategoryID,
		SubCategoryName: it.SubCategoryName,
		Status:          entities.ProductStatus(it.Status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
