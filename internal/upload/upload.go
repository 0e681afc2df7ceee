// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package upload

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"

	awsx "github.com/staranto/s3push/internal/aws"
	"github.com/staranto/s3push/internal/console"
)

var (
	// ErrCanceled is returned when the user declines the upload.
	ErrCanceled = errors.New("upload canceled")

	// ErrRerun is returned after a credential failure was remediated. Nothing
	// is retried; the user runs s3push again.
	ErrRerun = errors.New("credentials were reconfigured, rerun to upload")
)

// Putter is the part of *s3.Client the uploader needs.
type Putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Recovery decides whether a failed put can be fixed by reconfiguring
// credentials, and does so.
type Recovery interface {
	Recoverable(err error) bool
	Remediate(ctx context.Context) error
}

// Error is a failed object operation.
type Error struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("s3.%s s3://%s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Uploader pushes planned items to Bucket.
type Uploader struct {
	Client  Putter
	Bucket  string
	Console *console.Console

	// Recover is optional. Without it every failure is fatal.
	Recover Recovery
}

// ShowPlan prints the local to remote mapping of items.
func (u *Uploader) ShowPlan(items []Item) {
	var total int64
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.Local,
			fmt.Sprintf("s3://%s/%s", u.Bucket, it.Key),
			humanize.Bytes(uint64(it.Size)),
		})
		total += it.Size
	}

	u.Console.Warn("Files to upload to S3:")
	u.Console.Table([]string{"LOCAL", "S3", "SIZE"}, rows)
	u.Console.Plain("%d files, %s total", len(items), humanize.Bytes(uint64(total)))
}

// Run shows the plan, asks for confirmation unless assumeYes is set, then
// uploads each item in order. It stops at the first failure. A recoverable
// credential failure is remediated once and reported as ErrRerun; any other
// failure is returned unprinted for the caller to report.
func (u *Uploader) Run(ctx context.Context, items []Item, assumeYes bool) error {
	u.Console.Warn("Using S3 bucket: s3://%s", u.Bucket)
	u.ShowPlan(items)

	if !assumeYes {
		ok, err := u.Console.Confirm("Do you want to push these files to S3?")
		if err != nil {
			return err
		}
		if !ok {
			u.Console.Warn("Upload canceled. No files were pushed to S3.")
			return ErrCanceled
		}
	}

	for i, it := range items {
		if err := u.put(ctx, it); err != nil {
			if u.Recover != nil && u.Recover.Recoverable(err) {
				u.Console.Error("AWS error occurred: %s", awsx.ErrorMessage(err))
				if rerr := u.Recover.Remediate(ctx); rerr != nil {
					return fmt.Errorf("failed to reconfigure credentials after %v: %w", err, rerr)
				}
				return fmt.Errorf("%w: %d of %d files uploaded", ErrRerun, i, len(items))
			}
			return err
		}
		u.Console.Plain("uploaded %s", it.Key)
	}

	u.Console.Success("Files uploaded to S3 successfully!")
	return nil
}

func (u *Uploader) put(ctx context.Context, it Item) error {
	f, err := os.Open(it.Local)
	if err != nil {
		return &Error{Op: "put", Bucket: u.Bucket, Key: it.Key, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &Error{Op: "put", Bucket: u.Bucket, Key: it.Key, Err: err}
	}

	contentType := detectContentType(it.Local)
	log.WithFields(log.Fields{
		"bucket":       u.Bucket,
		"key":          it.Key,
		"size":         info.Size(),
		"content_type": contentType,
	}).Debug("put object")

	_, err = u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.Bucket),
		Key:           aws.String(it.Key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return &Error{Op: "put", Bucket: u.Bucket, Key: it.Key, Err: err}
	}
	return nil
}
