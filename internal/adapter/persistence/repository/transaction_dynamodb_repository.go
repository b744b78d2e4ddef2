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
	defaultTransactionsTableName = "transactions"
	transactionsProductIDIndex   = "product_id-index"
)

type transactionItem struct {
	Reference string `dynamodbav:"reference"`
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Amount    string `dynamodbav:"amount"`
	Status    string `dynamodbav:"status"`
	Purpose   string `dynamodbav:"purpose"`
	Used      bool   `dynamodbav:"used"`
	ProductID string `dynamodbav:"product_id"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: reference (string)
//   - GSI: product_id-index (PK: product_id)
//
// The reference is the PK on purpose: DynamoDB cannot enforce uniqueness on
// an index, so keying by reference makes the conditional PutItem the
// uniqueness constraint for the idempotency key.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#reference)"),
		ExpressionAttributeNames: map[string]string{
			"#reference": "reference",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Transaction{}, interfaces.ErrDuplicateReference
		}
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByReference(ctx context.Context, reference string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) UpdateStatusFromPending(ctx context.Context, reference string, status entities.TransactionStatus, used bool) (entities.Transaction, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		// Only transition out of Pending: two concurrent reconciles collapse
		// into one effective state change, the loser observes terminal state.
		ConditionExpression: aws.String("attribute_exists(#reference) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #used = :used, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.TransactionStatusPending)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":used":       &types.AttributeValueMemberBOOL{Value: used},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#reference":  "reference",
			"#status":     "status",
			"#used":       "used",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Transaction{}, nil
		}
		return entities.Transaction{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByProductID(ctx context.Context, productID string) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsProductIDIndex),
		KeyConditionExpression: aws.String("product_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		Reference: t.Reference,
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Amount:    floatToString(t.Amount),
		Status:    string(t.Status),
		Purpose:   t.Purpose,
		Used:      t.Used,
		ProductID: t.ProductID,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Transaction{
		Reference: it.Reference,
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Amount:    stringToFloat(it.Amount),
		Status:    entities.TransactionStatus(it.Status),
		Purpose:   it.Purpose,
		Used:      it.Used,
		ProductID: it.ProductID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
