// Package s3 provides a beacon.Loader implementation backed by an S3
// object, with optional KMS envelope decryption of the payload.
package s3

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/zoobzio/beacon"
)

// kmsPrefix marks a payload whose remainder is base64 KMS ciphertext.
const kmsPrefix = "aws:kms:"

// ObjectGetter is the subset of the S3 client the loader needs.
// *s3.Client satisfies it.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Decrypter is the subset of the KMS client the loader needs.
// *kms.Client satisfies it.
type Decrypter interface {
	Decrypt(ctx context.Context, params *kms.DecryptInput, optFns ...func(*kms.Options)) (*kms.DecryptOutput, error)
}

// Loader fetches the configuration payload from an S3 object. Every load
// performs a fresh GetObject; nothing is cached. Objects whose content
// starts with "aws:kms:" are treated as base64-encoded KMS ciphertext and
// decrypted with the configured Decrypter.
type Loader struct {
	client    ObjectGetter
	decrypter Decrypter
	bucket    string
	key       string
}

// Option configures a Loader.
type Option func(*Loader)

// WithDecrypter enables KMS envelope decryption of "aws:kms:" payloads.
func WithDecrypter(d Decrypter) Option {
	return func(l *Loader) {
		l.decrypter = d
	}
}

// New creates a new Loader for the given bucket and object key.
func New(client ObjectGetter, bucket, key string, opts ...Option) *Loader {
	l := &Loader{
		client: client,
		bucket: bucket,
		key:    key,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadContent fetches the object and decrypts it if necessary.
func (l *Loader) LoadContent(ctx context.Context) ([]byte, error) {
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(l.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("object %s/%s not found: %w", l.bucket, l.key, err)
		}
		return nil, fmt.Errorf("failed to get object %s/%s: %w", l.bucket, l.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s/%s: %w", l.bucket, l.key, err)
	}
	return l.decrypt(ctx, data)
}

// decrypt returns the payload as-is unless it carries the KMS prefix, in
// which case the remainder is base64-decoded and decrypted.
func (l *Loader) decrypt(ctx context.Context, data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if !bytes.HasPrefix(trimmed, []byte(kmsPrefix)) {
		return data, nil
	}
	if l.decrypter == nil {
		return nil, fmt.Errorf("object %s/%s is KMS-encrypted but no decrypter is configured", l.bucket, l.key)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(string(trimmed[len(kmsPrefix):]))
	if err != nil {
		return nil, fmt.Errorf("failed to base64-decode ciphertext of %s/%s: %w", l.bucket, l.key, err)
	}

	resp, err := l.decrypter.Decrypt(ctx, &kms.DecryptInput{
		CiphertextBlob: ciphertext,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt object %s/%s: %w", l.bucket, l.key, err)
	}
	return resp.Plaintext, nil
}

// Ensure Loader implements beacon.Loader.
var _ beacon.Loader = (*Loader)(nil)
