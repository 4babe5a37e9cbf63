package loader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.appointy.com/typedef/schemabuilder"
	"gocloud.dev/blob"

	// Drivers for OpenBucket URLs.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// OpenBucket opens the bucket at urlstr, e.g. "file:///etc/typedef" or
// "mem://". Other gocloud.dev drivers can be linked in by the caller.
func OpenBucket(ctx context.Context, urlstr string) (*blob.Bucket, error) {
	return blob.OpenBucket(ctx, urlstr)
}

// LoadBucket loads every definition file stored under prefix, in key order.
// Objects with other extensions are skipped.
func LoadBucket(ctx context.Context, bucket *blob.Bucket, prefix string) ([]*schemabuilder.EnumTypeDef, error) {
	var defs []*schemabuilder.EnumTypeDef

	iter := bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing %q: %w", prefix, err)
		}
		if obj.IsDir || !IsDefinitionFile(obj.Key) {
			continue
		}

		data, err := bucket.ReadAll(ctx, obj.Key)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", obj.Key, err)
		}
		loaded, err := Load(obj.Key, data)
		if err != nil {
			return nil, err
		}
		defs = append(defs, loaded...)
	}

	return defs, nil
}

// LoadURL opens the bucket at urlstr and loads it, see LoadBucket.
func LoadURL(ctx context.Context, urlstr, prefix string) ([]*schemabuilder.EnumTypeDef, error) {
	bucket, err := OpenBucket(ctx, urlstr)
	if err != nil {
		return nil, err
	}
	defer bucket.Close() //nolint:errcheck

	return LoadBucket(ctx, bucket, prefix)
}
