package repository

import (
	"context"
	"time"

	"campus_trade/internal/domain/entities"
	"campus_trade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCategoriesTableName    = "categories"
	defaultSubcategoriesTableName = "subcategories"
	subcategoriesCategoryIDIndex  = "category_id-index"
)

type categoryItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	CreatedAt string `dynamodbav:"created_at"`
}

type subcategoryItem struct {
	ID         string `dynamodbav:"id"`
	CategoryID string `dynamodbav:"category_id"`
	Name       string `dynamodbav:"name"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// CategoryDynamoRepository persists categories and subcategories in DynamoDB.
//
// Table requirements:
//   - categories: PK id (string)
//   - subcategories: PK id (string), GSI category_id-index (PK: category_id)

type CategoryDynamoRepository struct {
	ddb                *dynamodb.Client
	categoriesTable    string
	subcategoriesTable string
}

var _ interfaces.ICategoryRepository = (*CategoryDynamoRepository)(nil)

func NewCategoryDynamoRepository(ddb *dynamodb.Client) *CategoryDynamoRepository {
	return &CategoryDynamoRepository{
		ddb:                ddb,
		categoriesTable:    getenvDefault("CATEGORIES_TABLE", defaultCategoriesTableName),
		subcategoriesTable: getenvDefault("SUBCATEGORIES_TABLE", defaultSubcategoriesTableName),
	}
}

func (r *CategoryDynamoRepository) CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error) {
	av, err := attributevalue.MarshalMap(categoryItem{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Category{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.categoriesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Category{}, err
	}
	return c, nil
}

func (r *CategoryDynamoRepository) GetCategoryByID(ctx context.Context, id string) (entities.Category, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.categoriesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Category{}, err
	}
	if len(out.Item) == 0 {
		return entities.Category{}, nil
	}

	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Category{}, err
	}
	return fromCategoryItem(it), nil
}

func (r *CategoryDynamoRepository) ListCategories(ctx context.Context) ([]entities.Category, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.categoriesTable),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Category, 0, len(out.Items))
	for _, raw := range out.Items {
		var it categoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCategoryItem(it))
	}
	return items, nil
}

func (r *CategoryDynamoRepository) CreateSubcategory(ctx context.Context, s entities.Subcategory) (entities.Subcategory, error) {
	av, err := attributevalue.MarshalMap(subcategoryItem{
		ID:         s.ID,
		CategoryID: s.CategoryID,
		Name:       s.Name,
		CreatedAt:  s.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Subcategory{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.subcategoriesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Subcategory{}, err
	}
	return s, nil
}

func (r *CategoryDynamoRepository) GetSubcategoryByID(ctx context.Context, id string) (entities.Subcategory, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.subcategoriesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subcategory{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subcategory{}, nil
	}

	var it subcategoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subcategory{}, err
	}
	return fromSubcategoryItem(it), nil
}

func (r *CategoryDynamoRepository) ListSubcategoriesByCategoryID(ctx context.Context, categoryID string) ([]entities.Subcategory, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.subcategoriesTable),
		IndexName:              aws.String(subcategoriesCategoryIDIndex),
		KeyConditionExpression: aws.String("category_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: categoryID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Subcategory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it subcategoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSubcategoryItem(it))
	}
	return items, nil
}

func fromCategoryItem(it categoryItem) entities.Category {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Category{ID: it.ID, Name: it.Name, CreatedAt: createdAt}
}

func fromSubcategoryItem(it subcategoryItem) entities.Subcategory {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Subcategory{ID: it.ID, CategoryID: it.CategoryID, Name: it.Name, CreatedAt: createdAt}
}
