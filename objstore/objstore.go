// objstore/objstore.go
package objstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// S3Client é o subconjunto do cliente S3 usado pelo Lister
type S3Client interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

var _ S3Client = (*s3.Client)(nil)

// Lister lista buckets e objetos, seguindo os tokens de continuação
type Lister struct {
	client S3Client
	log    zerolog.Logger
}

// New cria um Lister; log pode ser zerolog.Nop()
func New(client S3Client, log zerolog.Logger) *Lister {
	return &Lister{client: client, log: log}
}

// Buckets retorna o nome de todos os buckets da conta.
// Uma entrada sem nome vira string vazia.
func (l *Lister) Buckets(ctx context.Context) ([]string, error) {
	var names []string
	paginator := s3.NewListBucketsPaginator(l.client, &s3.ListBucketsInput{})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("objstore: list buckets failed: %w", err)
		}
		for _, b := range out.Buckets {
			names = append(names, aws.ToString(b.Name))
		}
	}
	return names, nil
}

// WalkObjects entrega a fn a chave de cada objeto do bucket, página a página,
// e retorna quantas chaves foram entregues.
func (l *Lister) WalkObjects(ctx context.Context, bucket string, fn func(key string) error) (int, error) {
	count := 0
	paginator := s3.NewListObjectsV2Paginator(l.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})
	for page := 1; paginator.HasMorePages(); page++ {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return count, fmt.Errorf("objstore: list objects in %s failed: %w", bucket, err)
		}
		l.log.Debug().Str("bucket", bucket).Int("page", page).Int("objects", len(out.Contents)).Msg("object page fetched")

		for _, obj := range out.Contents {
			if err := fn(aws.ToString(obj.Key)); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
