package s3

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"file-storage-api/config"
	"file-storage-api/internal/domain/file"
)

type Client struct {
	logger *zap.Logger

	api     *awss3.Client
	presign *awss3.PresignClient

	region       string
	bucket       string
	baseEndpoint string
	presignTTL   time.Duration
}

func New(
	ctx context.Context,
	logger *zap.Logger,
	cfg config.S3,

) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	var s3Opts []func(*awss3.Options)
	if cfg.BaseEndpoint != "" {
		// MinIO / localstack do not resolve virtual-hosted bucket names
		s3Opts = append(s3Opts, func(o *awss3.Options) {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		})
	}

	api := awss3.NewFromConfig(awsCfg, s3Opts...)

	return &Client{
		logger:       logger,
		api:          api,
		presign:      awss3.NewPresignClient(api),
		region:       cfg.Region,
		bucket:       cfg.Bucket,
		baseEndpoint: cfg.BaseEndpoint,
		presignTTL:   cfg.PresignTTL,
	}, nil
}

func (c *Client) GetBucket() string { return c.bucket }

// GetPublicURL builds the canonical unsigned URL of an object.
// The object is only reachable through it when the bucket policy allows
// public reads.
func (c *Client) GetPublicURL(key string) string {
	if c.baseEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", c.baseEndpoint, c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}

func (c *Client) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	in := &awss3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := c.api.PutObject(ctx, in); err != nil {
		return mapError(err, "s3: put object")
	}

	return nil
}

// List returns all objects under prefix, following continuation tokens.
func (c *Client) List(ctx context.Context, prefix string) (file.ObjectRefs, error) {
	in := &awss3.ListObjectsV2Input{
		Bucket:     aws.String(c.bucket),
		Prefix:     aws.String(prefix),
		FetchOwner: aws.Bool(true),
	}

	var refs file.ObjectRefs
	for {
		out, err := c.api.ListObjectsV2(ctx, in)
		if err != nil {
			return nil, mapError(err, "s3: list objects")
		}
		for _, obj := range out.Contents {
			refs = append(refs, toObjectRef(obj, c.GetPublicURL(aws.ToString(obj.Key))))
		}
		if !aws.ToBool(out.IsTruncated) {
			break
		}
		in.ContinuationToken = out.NextContinuationToken
	}

	return refs, nil
}

func (c *Client) Copy(ctx context.Context, srcKey, dstKey string) error {
	_, err := c.api.CopyObject(ctx, &awss3.CopyObjectInput{
		Bucket:     aws.String(c.bucket),
		CopySource: aws.String(c.bucket + "/" + srcKey),
		Key:        aws.String(dstKey),
	})
	if err != nil {
		return mapError(err, "s3: copy object")
	}

	return nil
}

// Delete removes an object. S3 reports success even when the key
// never existed, so a benign delete of a missing key returns nil.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.api.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return mapError(err, "s3: delete object")
	}

	return nil
}

// Head reports whether an object with exactly this key exists.
func (c *Client) Head(ctx context.Context, key string) (bool, error) {
	_, err := c.api.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, mapError(err, "s3: head object")
	}

	return true, nil
}

// PresignGet signs a time-limited GET URL for the object.
func (c *Client) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := c.presign.PresignGetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, awss3.WithPresignExpires(c.presignTTL))
	if err != nil {
		return "", mapError(err, "s3: presign get")
	}

	return req.URL, nil
}

func toObjectRef(obj types.Object, url string) file.ObjectRef {
	ref := file.ObjectRef{
		Key:          aws.ToString(obj.Key),
		ETag:         aws.ToString(obj.ETag),
		Size:         aws.ToInt64(obj.Size),
		StorageClass: string(obj.StorageClass),
		URL:          url,
	}
	if obj.LastModified != nil {
		ref.LastModified = *obj.LastModified
	}
	if obj.Owner != nil {
		ref.Owner = file.Owner{
			DisplayName: aws.ToString(obj.Owner.DisplayName),
			ID:          aws.ToString(obj.Owner.ID),
		}
	}

	return ref
}
