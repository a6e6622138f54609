package notes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

// ObjectAPI is the part of *s3.Client used by S3Repository.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type S3Config struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	Bucket       string
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// NewS3Client builds a path-style client, which MinIO requires.
func NewS3Client(ctx context.Context, c S3Config) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
		}
		o.UsePathStyle = true
	}), nil
}

// S3Repository stores each note as notes/<owner>/<id>.json and keeps a
// small owners/<id> marker so that ownership can be checked by id alone.
// Writes to the same note id are not serialized across processes.
type S3Repository struct {
	api    ObjectAPI
	bucket string
}

func NewS3Repository(api ObjectAPI, bucket string) *S3Repository {
	return &S3Repository{api: api, bucket: bucket}
}

func noteKey(ownerID, id string) string { return "notes/" + ownerID + "/" + id + ".json" }

func ownerKey(id string) string { return "owners/" + id }

func (r *S3Repository) Upsert(ctx context.Context, note *models.Note) (*models.Note, error) {
	owner, err := r.get(ctx, ownerKey(note.ID))
	switch {
	case errors.Is(err, common.ErrorNotFound):
	case err != nil:
		return nil, err
	case string(owner) != note.OwnerID:
		return nil, common.ErrorNotFound
	}

	n := *note
	if err == nil {
		if old, err := r.load(ctx, noteKey(note.OwnerID, note.ID)); err == nil {
			n.CreatedAt = old.CreatedAt
		}
	}

	body, err := json.Marshal(&n)
	if err != nil {
		return nil, fmt.Errorf("encode note: %w", err)
	}
	if err := r.put(ctx, noteKey(n.OwnerID, n.ID), body, "application/json"); err != nil {
		return nil, err
	}
	if err := r.put(ctx, ownerKey(n.ID), []byte(n.OwnerID), "text/plain"); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *S3Repository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error) {
	prefix := "notes/" + ownerID + "/"
	p := s3.NewListObjectsV2Paginator(r.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(prefix),
	})

	result := []*models.Note{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if !strings.HasSuffix(key, ".json") {
				continue
			}
			n, err := r.load(ctx, key)
			if errors.Is(err, common.ErrorNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			result = append(result, n)
		}
	}
	sortNotes(result)
	return result, nil
}

func (r *S3Repository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	owner, err := r.get(ctx, ownerKey(id))
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if string(owner) != ownerID {
		return false, nil
	}

	for _, key := range []string{noteKey(ownerID, id), ownerKey(id)} {
		if _, err := r.api.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(r.bucket),
			Key:    aws.String(key),
		}); err != nil {
			return false, fmt.Errorf("s3 delete %s: %w", key, err)
		}
	}
	return true, nil
}

func (r *S3Repository) load(ctx context.Context, key string) (*models.Note, error) {
	body, err := r.get(ctx, key)
	if err != nil {
		return nil, err
	}
	n := &models.Note{}
	if err := json.Unmarshal(body, n); err != nil {
		return nil, fmt.Errorf("decode note %s: %w", key, err)
	}
	return n, nil
}

func (r *S3Repository) get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("s3 get %s: %w", key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read %s: %w", key, err)
	}
	return body, nil
}

func (r *S3Repository) put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := r.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	return nil
}
