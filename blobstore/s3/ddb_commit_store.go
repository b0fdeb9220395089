package s3

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/pointgen/blobstore"
)

// PointerName is the base name of a dataset's commit pointer blob.
const PointerName = "CURRENT"

// DDBCommitStore implements blobstore.BlobStore backed by S3 with DynamoDB
// for atomic pointer commits. This enables safe concurrent writers.
//
// Every blob whose base name is CURRENT is a pointer. Pointer writes append a
// new version to DynamoDB with a conditional put; pointer reads return the
// highest committed version. All other blobs live in S3.
//
// Table schema:
//   - Partition key: base_uri (string) - the S3 prefix plus the pointer's directory
//   - Sort key: version (number) - monotonically increasing version
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name pointgen-commits \
//	  --attribute-definitions AttributeName=base_uri,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=base_uri,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type DDBCommitStore struct {
	s3Store   blobstore.BlobStore
	ddbClient DDBClient
	tableName string
	baseURI   string
}

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// ErrConcurrentModification is returned when a concurrent write is detected.
var ErrConcurrentModification = errors.New("concurrent modification detected")

// NewDDBCommitStore creates a new S3+DynamoDB commit store.
// The baseURI should be "s3://bucket/prefix"; it namespaces the partition keys.
func NewDDBCommitStore(s3Store blobstore.BlobStore, ddbClient DDBClient, tableName, baseURI string) *DDBCommitStore {
	return &DDBCommitStore{
		s3Store:   s3Store,
		ddbClient: ddbClient,
		tableName: tableName,
		baseURI:   baseURI,
	}
}

func isPointer(name string) bool {
	return path.Base(name) == PointerName
}

func (s *DDBCommitStore) partitionKey(name string) string {
	return s.baseURI + "#" + path.Dir(name)
}

// Get reads a blob. For pointers the latest committed value is returned.
func (s *DDBCommitStore) Get(ctx context.Context, name string) ([]byte, error) {
	if isPointer(name) {
		version, target, err := s.getLatestVersion(ctx, s.partitionKey(name))
		if err != nil {
			return nil, err
		}
		if version == 0 {
			return nil, blobstore.ErrNotFound
		}
		return []byte(target), nil
	}
	return s.s3Store.Get(ctx, name)
}

// Put writes a blob. Pointers use a DynamoDB conditional write.
func (s *DDBCommitStore) Put(ctx context.Context, name string, data []byte) error {
	if isPointer(name) {
		return s.commitVersion(ctx, s.partitionKey(name), string(data))
	}
	return s.s3Store.Put(ctx, name, data)
}

// Delete deletes a blob. Deleting a pointer removes its whole version history.
func (s *DDBCommitStore) Delete(ctx context.Context, name string) error {
	if isPointer(name) {
		return s.deleteVersions(ctx, s.partitionKey(name))
	}
	return s.s3Store.Delete(ctx, name)
}

// List lists blobs with prefix. Pointers are not listed.
func (s *DDBCommitStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.s3Store.List(ctx, prefix)
}

// Version returns the latest committed version of a pointer, or 0.
func (s *DDBCommitStore) Version(ctx context.Context, name string) (uint64, error) {
	version, _, err := s.getLatestVersion(ctx, s.partitionKey(name))
	return version, err
}

// getLatestVersion queries DynamoDB for the latest committed version.
func (s *DDBCommitStore) getLatestVersion(ctx context.Context, key string) (uint64, string, error) {
	resp, err := s.ddbClient.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("base_uri = :uri"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uri": &types.AttributeValueMemberS{Value: key},
		},
		ScanIndexForward: aws.Bool(false), // Descending order
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", fmt.Errorf("failed to query DynamoDB: %w", err)
	}

	if len(resp.Items) == 0 {
		return 0, "", nil
	}

	return parseItem(resp.Items[0])
}

func parseItem(item map[string]types.AttributeValue) (uint64, string, error) {
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("invalid version attribute in DynamoDB")
	}
	targetAttr, ok := item["target"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("invalid target attribute in DynamoDB")
	}

	version, err := strconv.ParseUint(versionAttr.Value, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("failed to parse version: %w", err)
	}

	return version, targetAttr.Value, nil
}

// commitVersion atomically commits a new pointer version using a DynamoDB conditional write.
func (s *DDBCommitStore) commitVersion(ctx context.Context, key, target string) error {
	currentVersion, _, err := s.getLatestVersion(ctx, key)
	if err != nil {
		return err
	}

	newVersion := currentVersion + 1

	// Conditional put: only succeed if this version doesn't exist yet
	_, err = s.ddbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"base_uri": &types.AttributeValueMemberS{Value: key},
			"version":  &types.AttributeValueMemberN{Value: strconv.FormatUint(newVersion, 10)},
			"target":   &types.AttributeValueMemberS{Value: target},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})

	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return ErrConcurrentModification
		}
		return fmt.Errorf("failed to commit version to DynamoDB: %w", err)
	}

	return nil
}

func (s *DDBCommitStore) deleteVersions(ctx context.Context, key string) error {
	paginator := dynamodb.NewQueryPaginator(s.ddbClient, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("base_uri = :uri"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uri": &types.AttributeValueMemberS{Value: key},
		},
	})

	// Collect every key first so deletes do not shift the pages.
	var keys []map[string]types.AttributeValue
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to query DynamoDB: %w", err)
		}
		for _, item := range page.Items {
			keys = append(keys, map[string]types.AttributeValue{
				"base_uri": item["base_uri"],
				"version":  item["version"],
			})
		}
	}

	for _, k := range keys {
		_, err := s.ddbClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.tableName),
			Key:       k,
		})
		if err != nil {
			return fmt.Errorf("failed to delete version from DynamoDB: %w", err)
		}
	}

	return nil
}
