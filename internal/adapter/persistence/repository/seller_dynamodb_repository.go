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

const defaultSellersTableName = "sellers"

type sellerItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Email       string `dynamodbav:"email"`
	School      string `dynamodbav:"school"`
	KYCVerified bool   `dynamodbav:"kyc_verified"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// SellerDynamoRepository persists Seller entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type SellerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISellerRepository = (*SellerDynamoRepository)(nil)

func NewSellerDynamoRepository(ddb *dynamodb.Client) *SellerDynamoRepository {
	return &SellerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SELLERS_TABLE", defaultSellersTableName),
	}
}

func (r *SellerDynamoRepository) Create(ctx context.Context, s entities.Seller) (entities.Seller, error) {
	it := toSellerItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Seller{}, err
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
		return entities.Seller{}, err
	}
	return s, nil
}

func (r *SellerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Seller, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Seller{}, err
	}
	if len(out.Item) == 0 {
		return entities.Seller{}, nil
	}

	var it sellerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Seller{}, err
	}
	return fromSellerItem(it), nil
}

func (r *SellerDynamoRepository) SetKYCVerified(ctx context.Context, id string, verified bool) (entities.Seller, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #kyc_verified = :verified, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":verified":   &types.AttributeValueMemberBOOL{Value: verified},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#kyc_verified": "kyc_verified",
			"#updated_at":   "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Seller{}, nil
		}
		return entities.Seller{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Seller{}, nil
	}

	var it sellerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Seller{}, err
	}
	return fromSellerItem(it), nil
}

func toSellerItem(s entities.Seller) sellerItem {
	return sellerItem{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		School:      s.School,
		KYCVerified: s.KYCVerified,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSellerItem(it sellerItem) entities.Seller {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Seller{
		ID:          it.ID,
		Name:        it.Name,
		Email:       it.Email,
		School:      it.School,
		KYCVerified: it.KYCVerified,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
