// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awsx "github.com/staranto/s3push/internal/aws"
	"github.com/staranto/s3push/internal/console"
)

type putCall struct {
	bucket string
	key    string
	body   string
}

// fakePutter records each put and fails the call at index failAt with err.
type fakePutter struct {
	calls  []putCall
	failAt int
	err    error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, _ := io.ReadAll(in.Body)
	f.calls = append(f.calls, putCall{aws.ToString(in.Bucket), aws.ToString(in.Key), string(body)})
	if f.err != nil && len(f.calls)-1 == f.failAt {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

type fakeRecovery struct {
	codes      []string
	remediated int
	err        error
}

func (f *fakeRecovery) Recoverable(err error) bool {
	return awsx.IsInvalidCredentials(err, f.codes...)
}

func (f *fakeRecovery) Remediate(context.Context) error {
	f.remediated++
	return f.err
}

func setup(t *testing.T, answer string) ([]Item, *fakePutter, *Uploader, *bytes.Buffer) {
	t.Helper()
	root := makeTree(t, map[string]string{
		"one.txt":     "first",
		"two/two.txt": "second",
		"three.txt":   "third",
	})
	items, err := Plan(root, "dest")
	require.NoError(t, err)

	putter := &fakePutter{}
	var out bytes.Buffer
	u := &Uploader{
		Client:  putter,
		Bucket:  "my-bucket",
		Console: console.New(strings.NewReader(answer), &out, false),
	}
	return items, putter, u, &out
}

func TestRun_UploadsEveryFileInOrder(t *testing.T) {
	items, putter, u, out := setup(t, "Yes\n")

	require.NoError(t, u.Run(context.Background(), items, false))

	assert.Equal(t, []putCall{
		{"my-bucket", "dest/one.txt", "first"},
		{"my-bucket", "dest/three.txt", "third"},
		{"my-bucket", "dest/two/two.txt", "second"},
	}, putter.calls)

	text := out.String()
	assert.Contains(t, text, "Using S3 bucket: s3://my-bucket")
	assert.Contains(t, text, "s3://my-bucket/dest/two/two.txt")
	assert.Contains(t, text, "3 files")
	assert.Contains(t, text, "Files uploaded to S3 successfully!")
}

func TestRun_DeclinedPerformsNoUploads(t *testing.T) {
	for _, answer := range []string{"No\n", "\n", "", "nope\n"} {
		t.Run(fmt.Sprintf("%q", answer), func(t *testing.T) {
			items, putter, u, out := setup(t, answer)

			err := u.Run(context.Background(), items, false)
			assert.ErrorIs(t, err, ErrCanceled)
			assert.Empty(t, putter.calls)
			assert.Contains(t, out.String(), "Upload canceled. No files were pushed to S3.")
		})
	}
}

func TestRun_AssumeYesSkipsPrompt(t *testing.T) {
	items, putter, u, out := setup(t, "")

	require.NoError(t, u.Run(context.Background(), items, true))
	assert.Len(t, putter.calls, 3)
	assert.NotContains(t, out.String(), "Do you want to push")
}

func TestRun_InvalidCredentialsRemediatesOnce(t *testing.T) {
	items, putter, u, out := setup(t, "y\n")
	putter.failAt = 1
	putter.err = fmt.Errorf("operation error S3: PutObject: %w",
		&smithy.GenericAPIError{Code: "InvalidAccessKeyId", Message: "The AWS Access Key Id you provided does not exist"})
	rec := &fakeRecovery{codes: []string{awsx.CodeInvalidAccessKeyID}}
	u.Recover = rec

	err := u.Run(context.Background(), items, false)
	assert.ErrorIs(t, err, ErrRerun)
	assert.ErrorContains(t, err, "1 of 3 files uploaded")
	assert.Equal(t, 1, rec.remediated)
	assert.Len(t, putter.calls, 2, "no retry and no further puts after the failure")
	assert.Contains(t, out.String(), "AWS error occurred: The AWS Access Key Id you provided does not exist")
}

func TestRun_RemediationFailure(t *testing.T) {
	items, putter, u, _ := setup(t, "y\n")
	putter.err = &smithy.GenericAPIError{Code: "InvalidAccessKeyId"}
	rec := &fakeRecovery{codes: []string{awsx.CodeInvalidAccessKeyID}, err: errors.New("aws not installed")}
	u.Recover = rec

	err := u.Run(context.Background(), items, false)
	assert.ErrorContains(t, err, "aws not installed")
	assert.NotErrorIs(t, err, ErrRerun)
	assert.Equal(t, 1, rec.remediated)
}

func TestRun_FatalErrorStops(t *testing.T) {
	items, putter, u, out := setup(t, "y\n")
	putter.err = &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "The specified bucket does not exist"}
	rec := &fakeRecovery{codes: []string{awsx.CodeInvalidAccessKeyID}}
	u.Recover = rec

	err := u.Run(context.Background(), items, false)
	require.Error(t, err)

	var upErr *Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "dest/one.txt", upErr.Key)
	assert.Equal(t, "my-bucket", upErr.Bucket)
	assert.Equal(t, "NoSuchBucket", awsx.ErrorCode(err))
	assert.Equal(t, 0, rec.remediated)
	assert.Len(t, putter.calls, 1)
	assert.NotContains(t, out.String(), "The specified bucket does not exist", "the caller reports fatal errors")
}

func TestRun_NoRecoveryMeansFatal(t *testing.T) {
	items, putter, u, _ := setup(t, "y\n")
	putter.err = &smithy.GenericAPIError{Code: "InvalidAccessKeyId"}

	err := u.Run(context.Background(), items, false)
	assert.NotErrorIs(t, err, ErrRerun)
	assert.Len(t, putter.calls, 1)
}

func TestError_Message(t *testing.T) {
	err := &Error{Op: "put", Bucket: "b", Key: "k/v.txt", Err: errors.New("boom")}
	assert.Equal(t, "s3.put s3://b/k/v.txt: boom", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "boom")
}
