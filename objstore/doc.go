// Package objstore lista buckets e objetos do Amazon S3 sobre o AWS SDK Go v2.
//
// Exemplo:
//
//	lister := objstore.New(s3.NewFromConfig(cfg), log)
//	total, err := lister.WalkObjects(ctx, "my-bucket", func(key string) error {
//		fmt.Println(key)
//		return nil
//	})
package objstore
