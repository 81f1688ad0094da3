package backendsvc

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"
)

// UploadDocument uploads a document for course creation and returns its
// opaque id (POST /files/documents, multipart).
func (c *Client) UploadDocument(ctx context.Context, filename string, r io.Reader) (string, error) {
	return c.uploadFile(ctx, "/files/documents", filename, r)
}

// UploadImage uploads an image and returns its opaque id (POST /files/images).
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	return c.uploadFile(ctx, "/files/images", filename, r)
}

func (c *Client) uploadFile(ctx context.Context, path, filename string, r io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.Wrap(err, "creating multipart body")
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", errors.Wrapf(err, "reading %s", filename)
	}
	if err := mw.Close(); err != nil {
		return "", errors.Wrap(err, "finalizing multipart body")
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &body, mw.FormDataContentType())
	if err != nil {
		return "", err
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", errors.New("backend returned an empty file id")
	}
	return resp.ID, nil
}
